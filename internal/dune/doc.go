// Package dune is a client for the Dune Analytics table API endpoints
// the uploader needs: table create, clear and CSV insert.
package dune
