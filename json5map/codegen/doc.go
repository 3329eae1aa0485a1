// Package codegen generates json5map record descriptors for Go structs.
//
// For each package it finds the struct types carrying json5 field tags, or
// a //json5:gen directive in their doc comment, and writes a file with a
// RegisterJSON5 function registering a json5map.Record with typed getters
// and setters for every mapped field, so that no struct tags need to be
// read through reflection at run time.
//
// # Related Packages
//
//   - github.com/signadot/json5-format/go-json5/json5map - Serializer and Deserializer
package codegen
