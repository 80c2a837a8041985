package engine

const (
	// Flags
	ExactFlag uint8 = iota
	LowerFlag
	UpperFlag
)

type ttEntry struct {
	result line
	depth  int
	flag   uint8
}

/*
TRANSPOSITION TABLE
One map per iteration of the deepening loop. Results are only reused within the
same iteration and at the same remaining depth, so a stored score always means
the same thing as a fresh search would. When a new depth starts the current map
becomes the previous one, which is read only and only used to break ties in
move ordering.
*/
type transTable struct {
	entries  map[uint64]ttEntry
	previous map[uint64]ttEntry
}

func newTransTable() *transTable {
	return &transTable{entries: make(map[uint64]ttEntry)}
}

// nextDepth retires the current map into the ordering slot and starts a new one.
func (tt *transTable) nextDepth() {
	tt.previous = tt.entries
	tt.entries = make(map[uint64]ttEntry, len(tt.previous))
}

// probe returns a stored result when it was computed at the same remaining depth
// and its bound decides the window.
func (tt *transTable) probe(hash uint64, depth int, alpha, beta int32) (line, bool) {
	entry, ok := tt.entries[hash]
	if !ok || entry.depth != depth {
		return line{}, false
	}
	switch entry.flag {
	case ExactFlag:
		return entry.result, true
	case LowerFlag:
		if entry.result.score >= beta {
			return entry.result, true
		}
	case UpperFlag:
		if entry.result.score <= alpha {
			return entry.result, true
		}
	}
	return line{}, false
}

// store records result, flagged against the window the node was entered with.
func (tt *transTable) store(hash uint64, depth int, alpha, beta int32, result line) {
	flag := ExactFlag
	if result.score <= alpha {
		flag = UpperFlag
	} else if result.score >= beta {
		flag = LowerFlag
	}
	tt.entries[hash] = ttEntry{result: result, depth: depth, flag: flag}
}

// previousScore is the white-relative score the last iteration found for hash.
func (tt *transTable) previousScore(hash uint64) (int32, bool) {
	entry, ok := tt.previous[hash]
	if !ok {
		return 0, false
	}
	return entry.result.score, true
}

func (tt *transTable) size() int {
	return len(tt.entries)
}
