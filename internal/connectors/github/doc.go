// Package github implements the ContentSource port against the GitHub
// REST API.
//
// # Architecture
//
// The package comprises the following components:
//
//   - Source: implements [driven.ContentSource] for core services
//   - Client: handles GitHub API communication with rate limiting
//   - RateLimiter: dual-strategy throttling shared by all requests
//
// # Authentication
//
// Requests work unauthenticated for public repositories within the
// anonymous quota of 60 requests per hour. Supplying a personal access
// token (classic or fine-grained, created at github.com/settings/tokens)
// raises the limit to 5,000 per hour and grants access to private
// repositories.
//
// # Rate Limiting
//
// The client implements a dual-strategy rate limiting approach:
//
//  1. Proactive throttling: a token bucket algorithm limits request
//     frequency, staying under the hourly quota whilst maximising
//     throughput.
//
//  2. Reactive handling: the client monitors X-RateLimit-Remaining and
//     X-RateLimit-Reset headers. When limits are exhausted, it waits
//     until the reset time before continuing.
//
// # Fetch Operations
//
// Building a deck touches three endpoints:
//
//  1. The repository endpoint for metadata and the default branch
//  2. The recursive Trees API for the full file listing in one call
//  3. The contents endpoint per selected file
//
// # Limitations
//
//   - File size limit: 1MB per file (GitHub API constraint)
//   - Private repository access requires appropriate token scopes
package github
