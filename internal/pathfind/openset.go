package pathfind

import "container/heap"

// openSet is a binary heap of nodes ordered by (FCost, HCost).
// Each node records its own heap position so updates can use heap.Fix.
type openSet []*Node

func (s openSet) Len() int           { return len(s) }
func (s openSet) Less(i, j int) bool { return s[i].less(s[j]) }
func (s openSet) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
	s[i].heapIndex = i
	s[j].heapIndex = j
}

func (s *openSet) Push(x any) {
	n := x.(*Node)
	n.heapIndex = len(*s)
	*s = append(*s, n)
}

func (s *openSet) Pop() any {
	old := *s
	last := len(old) - 1
	n := old[last]
	old[last] = nil
	n.heapIndex = -1
	*s = old[:last]
	return n
}

func (s *openSet) push(n *Node) { heap.Push(s, n) }
func (s *openSet) pop() *Node   { return heap.Pop(s).(*Node) }
func (s *openSet) fix(n *Node)  { heap.Fix(s, n.heapIndex) }
