package config

// Category groups related properties for presentation. It has no effect on
// resolution.
type Category string

// Property categories.
const (
	CategoryGeneral    Category = "general"
	CategoryDatabase   Category = "database"
	CategoryHTTP       Category = "http"
	CategoryHostname   Category = "hostname"
	CategoryProxy      Category = "proxy"
	CategoryMetrics    Category = "metrics"
	CategoryVault      Category = "vault"
	CategoryClustering Category = "clustering"
	CategoryFeature    Category = "feature"
)
