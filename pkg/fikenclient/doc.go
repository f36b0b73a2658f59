// Package fikenclient provides the main entry point for constructing a Fiken
// API v2 client that implements the fiken.Client interface.
//
// It layers configuration, authentication, request pacing and the HTTP
// transport on top of the resource interfaces and types defined in the fiken
// package. Most applications build a client here and then work through the
// company-scoped resource clients.
//
// Quick start
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
//
//	  // With a personal API token:
//	  cli, err := fikenclient.NewWithToken(ctx, "my-api-token")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with an OAuth2 authorization; the access token is refreshed
//	  // five minutes before it expires:
//	  cli, err = fikenclient.New(ctx, &fiken.Config{
//	    AccessToken:  "access",
//	    RefreshToken: "refresh",
//	    ClientID:     "client-id",
//	    ClientSecret: "client-secret",
//	  })
//
//	  company := cli.Company("fiken-demo-as")
//	  contacts, err := company.Contacts().List(ctx, fiken.NewQueryParams().WithPageSize(100)).All()
//	  if err != nil { log.Fatal(err) }
//	  _ = contacts
//	}
//
// Rate limiting
//
// Fiken allows one request at a time and four per second. Every client built
// here shares one gate across all of its resource clients, including each
// page of a list and each retry. Build one client per process and share it.
//
// Errors
//
// HTTP errors are returned as *fiken.APIError and match the sentinel errors
// of the fiken package with errors.Is, for example fiken.ErrNotFound or
// fiken.ErrRateLimited.
package fikenclient
