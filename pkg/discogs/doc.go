// Package discogs provides a client library for the Discogs database API.
//
// # Overview
//
// This package implements a Go client for the XML interface of the Discogs
// API. It covers the four read-only endpoint families: releases, artists,
// labels and search. Each call issues exactly one GET request, validates the
// response and projects the XML into plain Go structs.
//
// # Installation
//
//	go get github.com/jfmyers9/crate/pkg/discogs
//
// # Quick Start
//
// Create a client with your API key:
//
//	import "github.com/jfmyers9/crate/pkg/discogs"
//
//	client, err := discogs.NewClient(discogs.Config{
//	    APIKey:    "your-api-key",
//	    UserAgent: "myapp/1.0",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Lookups
//
//	release, err := client.GetRelease(ctx, "1")
//	artist, err := client.GetArtist(ctx, "Radiohead")
//	label, err := client.GetLabel(ctx, "Warp Records")
//	results, err := client.Search(ctx, "Stockholm", discogs.SearchReleases, 2)
//
// Release slices are always non-nil. For artists and labels, a nil slice (or
// a nil ParentLabel) means Discogs did not include that section at all:
//
//	if artist.URLs == nil {
//	    fmt.Println("no links on file")
//	}
//
// # Error Handling
//
// Two error types are returned:
//
//	release, err := client.GetRelease(ctx, id)
//	if err != nil {
//	    var apiErr *discogs.APIError
//	    var netErr *discogs.TransportError
//	    switch {
//	    case errors.As(err, &apiErr) && apiErr.NotFound():
//	        // no such release
//	    case errors.Is(err, discogs.ErrInvalidXML):
//	        // the body was not XML
//	    case errors.As(err, &netErr) && netErr.Timeout():
//	        // took longer than client.Timeout()
//	    }
//	}
//
// The client never retries. Callers decide whether a failed call is worth
// repeating.
//
// # Configuration
//
// The timeout, user agent and API key can be changed after construction:
//
//	client.SetTimeout(10 * time.Second)
//	client.SetUserAgent("myapp/2.0")
//	fmt.Println(client.UserAgent()) // "Go Discogs/1.0.0 myapp/2.0"
//
// Setting RateLimit in Config throttles outbound requests with a token bucket:
//
//	client, err := discogs.NewClient(discogs.Config{
//	    APIKey:    "your-api-key",
//	    RateLimit: 1, // one request per second
//	})
//
// # Discogs API Documentation
//
// For more information about the Discogs API:
// https://www.discogs.com/developers
package discogs
