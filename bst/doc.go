// SPDX-License-Identifier: MIT

// Package bst is an arena-indexed binary search tree whose operations each
// return the step.Run that shows how they worked.
//
// Nodes live in an arena and are addressed by NodeID. An ID is assigned on
// insertion and never reused, even after the node is deleted, so a renderer
// can follow one node across every step of a Run.
//
// Operations:
//
//	Insert(v)    descend… then insert, or duplicate when v is present
//	Search(v)    descend… then found or not-found
//	Delete(v)    descend… found, then delete; a node with two children
//	             first promotes its in-order successor (replace) and the
//	             successor node is removed from the right subtree
//	InOrder()    visit per node, Snapshot.Output grows
//	PreOrder()
//	PostOrder()
//
// Every Run ends with a done step. Snapshots hold a flat copy of the live
// nodes (ID order), the root, the path walked so far and any traversal output.
//
// A Tree is not safe for concurrent use.
package bst
