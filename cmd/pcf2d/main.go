// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Command pcf2d computes the pair correlation function of a point pattern
// stored as a GeoJSON FeatureCollection.
package main

func main() {
	Execute()
}
