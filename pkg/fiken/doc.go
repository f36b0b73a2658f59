// Package fiken provides types, interfaces, and helpers for working with the
// Fiken accounting API (v2).
//
// # Overview
//
// The fiken package defines the domain types (e.g., Company, Contact,
// Invoice, Sale, Purchase, JournalEntry) and the interfaces for
// resource-oriented clients (e.g., ContactsClient, InvoicesClient). A concrete
// implementation is provided by the fikenclient package, which wires
// configuration, transport, authentication, and the request gate. Most
// consumers should import fikenclient to construct a client and then interact
// with the resource client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/fiken-client/pkg/fiken"
//	  "github.com/fivetwenty-io/fiken-client/pkg/fikenclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := fikenclient.NewWithToken("my-api-token")
//	  if err != nil { log.Fatal(err) }
//	  defer cli.Close()
//
//	  contacts := cli.Company("my-company").Contacts().List(ctx, fiken.NewQueryParams().WithPageSize(100))
//	  for contact, err := range contacts.Seq() {
//	    if err != nil { log.Fatal(err) }
//	    _ = contact
//	  }
//	}
//
// # Pagination
//
// List operations return a PaginationIterator without touching the network.
// Pages are fetched on demand, each one through the client's request gate,
// and the iterator stops when the Fiken-Api-Page-Count header says the last
// page has been read, when the header is missing, or when a page is empty.
// FetchAllPages collects a whole list; StreamPages delivers pages over a
// channel from a background goroutine.
//
// # Errors
//
// Non-success responses are returned as *APIError, classified by status
// code. Use errors.Is with the kind sentinels (ErrNotFound, ErrValidation,
// ErrAuthentication, ...) or the helpers IsNotFound, IsUnauthorized and
// IsRateLimited.
//
// # Rate limiting
//
// Fiken allows one request in flight and four requests per second per
// client. The concrete client enforces both through a single request gate;
// callers never need to pace themselves.
package fiken
