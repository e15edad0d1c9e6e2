// SPDX-License-Identifier: MIT

package dfs_test

import (
	"testing"

	"github.com/katalvlaran/stepviz/dfs"
)

// BenchmarkDFS_Chain measures DFS on a directed chain.
func BenchmarkDFS_Chain(b *testing.B) {
	g := buildChain(200)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, "N0")
	}
}

// BenchmarkDFS_BinaryTree measures DFS on a complete binary tree of depth 7.
func BenchmarkDFS_BinaryTree(b *testing.B) {
	g := buildBinaryTree(7)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, "T-1")
	}
}

// BenchmarkTopologicalSort_BinaryTree measures the recorded topological sort.
func BenchmarkTopologicalSort_BinaryTree(b *testing.B) {
	g := buildBinaryTree(7)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.TopologicalSort(g)
	}
}
