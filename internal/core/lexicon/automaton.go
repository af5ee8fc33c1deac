package lexicon

// automaton is a byte-level Aho-Corasick matcher. Each node keeps a full
// 256-way transition table so the scan loop never touches a map

type node struct {
	next [256]int32 // -1 when absent
	fail int32
	out  []int // term ids ending here, including those reached through fail links
}

type automaton struct {
	nodes []node
}

func newNode() node {
	var n node
	for i := range n.next {
		n.next[i] = -1
	}
	return n
}

func newAutomaton() *automaton {
	return &automaton{nodes: []node{newNode()}}
}

func (a *automaton) add(pat []byte, id int) {
	if len(pat) == 0 {
		return
	}
	var state int32
	for _, b := range pat {
		nxt := a.nodes[state].next[b]
		if nxt < 0 {
			nxt = int32(len(a.nodes))
			a.nodes[state].next[b] = nxt
			a.nodes = append(a.nodes, newNode())
		}
		state = nxt
	}
	a.nodes[state].out = append(a.nodes[state].out, id)
}

// build computes fail links breadth first
func (a *automaton) build() {
	queue := make([]int32, 0, len(a.nodes))
	for b := range 256 {
		if s := a.nodes[0].next[b]; s >= 0 {
			a.nodes[s].fail = 0
			queue = append(queue, s)
		}
	}
	for qi := 0; qi < len(queue); qi++ {
		r := queue[qi]
		for b := range 256 {
			s := a.nodes[r].next[b]
			if s < 0 {
				continue
			}
			queue = append(queue, s)

			f := a.nodes[r].fail
			for f != 0 && a.nodes[f].next[b] < 0 {
				f = a.nodes[f].fail
			}
			if nxt := a.nodes[f].next[b]; nxt >= 0 {
				a.nodes[s].fail = nxt
			}
			a.nodes[s].out = append(a.nodes[s].out, a.nodes[a.nodes[s].fail].out...)
		}
	}
}

// scan calls fn with the exclusive end offset and term id of every match
func (a *automaton) scan(text []byte, fn func(end, id int)) {
	var state int32
	for i, b := range text {
		for state != 0 && a.nodes[state].next[b] < 0 {
			state = a.nodes[state].fail
		}
		if nxt := a.nodes[state].next[b]; nxt >= 0 {
			state = nxt
		}
		for _, id := range a.nodes[state].out {
			fn(i+1, id)
		}
	}
}
