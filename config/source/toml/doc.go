// Package toml loads TOML configuration documents into flat property maps
// using BurntSushi/toml.
package toml
