// SPDX-License-Identifier: MIT

package step

// Kind tags what a Step represents. Each algorithm family draws its tags from
// a small closed subset of the vocabulary below.
type Kind string

// Shared by every family.
const (
	KindInit Kind = "init"
	KindDone Kind = "done"
)

// Sorting.
const (
	KindCompare  Kind = "compare"
	KindSwap     Kind = "swap"
	KindShift    Kind = "shift"
	KindInsert   Kind = "insert"
	KindBoundary Kind = "boundary"
	KindCount    Kind = "count"
	KindPlace    Kind = "place"
)

// Searching.
const (
	KindCheck    Kind = "check"
	KindCheckMid Kind = "check-mid"
	KindGoLeft   Kind = "go-left"
	KindGoRight  Kind = "go-right"
	KindFound    Kind = "found"
	KindNotFound Kind = "not-found"
)

// Graph traversal.
const (
	KindDequeue      Kind = "dequeue"
	KindEnqueue      Kind = "enqueue"
	KindPop          Kind = "pop"
	KindPush         Kind = "push"
	KindVisit        Kind = "visit"
	KindSkip         Kind = "skip"
	KindExploreEdge  Kind = "explore-edge"
	KindNodeComplete Kind = "node-complete"
)

// String matching.
const (
	KindLPS         Kind = "lps"
	KindMatch       Kind = "match"
	KindMismatch    Kind = "mismatch"
	KindFallback    Kind = "fallback"
	KindHash        Kind = "hash"
	KindCompareHash Kind = "compare-hash"
	KindVerify      Kind = "verify"
	KindCollision   Kind = "collision"
	KindSlide       Kind = "slide"
)

// Trees and linked structures.
const (
	KindDescend   Kind = "descend"
	KindDuplicate Kind = "duplicate"
	KindDelete    Kind = "delete"
	KindReplace   Kind = "replace"
	KindTraverse  Kind = "traverse"
	KindLink      Kind = "link"
	KindUnlink    Kind = "unlink"
	KindPeek      Kind = "peek"
)

// String returns the tag text.
func (k Kind) String() string { return string(k) }
