// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides the background workers of the PakSentiment
// scraper. It defines the Worker interface, the [ScrapeWorker] that moves
// posts from the social sources to the server, and a Workers aggregate that
// runs several workers concurrently.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until the work is done or ctx is cancelled. Cancellation is a
// normal stop and is not reported as an error.
type Worker interface {
	Run(ctx context.Context) error
}
