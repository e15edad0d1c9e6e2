// SPDX-License-Identifier: MIT

// Package linear provides a singly linked list, a bounded stack and a
// bounded queue whose operations each return a step.Run.
//
// List positions are 1-based. InsertAt accepts 1..Len()+1 and DeleteAt
// accepts 1..Len(); anything else fails with ErrPositionOutOfRange before a
// Run is recorded. List operations that have to walk the chain record one
// traverse step per node passed, then link or unlink.
//
// Stack (default capacity 7) and Queue (default capacity 9) refuse to grow
// past their capacity with ErrFull and to shrink below zero with ErrEmpty.
//
// Every element carries an ID assigned when it is created and never reused,
// so a renderer can animate one element across steps. Every Run ends with a
// done step.
//
// None of the types is safe for concurrent use.
package linear
