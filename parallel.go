// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package pcf2d

import (
	"golang.org/x/sync/errgroup"
)

const (
	blockSize = 64
)

func numBlocks(n int) int {
	return (n + blockSize - 1) / blockSize
}

// forEachBlock calls fn for consecutive index ranges [lo, hi) of at most
// blockSize elements covering [0, n), running up to workers calls at once.
// Block boundaries do not depend on workers.
func forEachBlock(n, workers int, fn func(block, lo, hi int)) {
	var g errgroup.Group
	g.SetLimit(workers)
	for b := range numBlocks(n) {
		lo := b * blockSize
		hi := min(lo+blockSize, n)
		g.Go(func() error {
			fn(b, lo, hi)
			return nil
		})
	}
	_ = g.Wait()
}
