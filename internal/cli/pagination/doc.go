// Package pagination pages and sorts list output of the CLI.
//
// Lists are fetched whole from the upstream; --page/--page-size and --sort
// shape what is printed. The upstream request itself is not paginated.
package pagination
