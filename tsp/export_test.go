// Test-only hooks exposing selected internals to the external tsp_test
// package. These symbols exist only under `go test`.
package tsp

var (
	TestHookOddVertices     = oddVertices
	TestHookGreedyMatch     = greedyMatch
	TestHookExactMatch      = exactMatch
	TestHookMatchOdd        = matchOdd
	TestHookMatchingWeight  = matchingWeight
	TestHookEulerianCircuit = eulerianCircuit
	TestHookNearestNeighbor = nearestNeighborTour
)
