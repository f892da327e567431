package raster

// DefaultUndoDepth is the number of snapshots kept when no depth is given.
const DefaultUndoDepth = 20

// UndoStack is a bounded stack of buffer snapshots.
// When full, pushing evicts the oldest snapshot so the most recent
// depth entries are always kept.
type UndoStack struct {
	depth     int
	snapshots []*Buffer
}

// NewUndoStack creates a stack holding at most depth snapshots.
func NewUndoStack(depth int) *UndoStack {
	if depth <= 0 {
		depth = DefaultUndoDepth
	}
	return &UndoStack{
		depth:     depth,
		snapshots: make([]*Buffer, 0, depth),
	}
}

// Push stores a copy of buf.
func (u *UndoStack) Push(buf *Buffer) {
	if len(u.snapshots) == u.depth {
		u.snapshots[0] = nil
		u.snapshots = append(u.snapshots[:0], u.snapshots[1:]...)
	}
	u.snapshots = append(u.snapshots, buf.Clone())
}

// Pop removes and returns the most recent snapshot.
// Returns false when the stack is empty.
func (u *UndoStack) Pop() (*Buffer, bool) {
	n := len(u.snapshots)
	if n == 0 {
		return nil, false
	}
	snap := u.snapshots[n-1]
	u.snapshots[n-1] = nil
	u.snapshots = u.snapshots[:n-1]
	return snap, true
}

// Len returns the number of stored snapshots.
func (u *UndoStack) Len() int {
	return len(u.snapshots)
}

// Clear drops all snapshots.
func (u *UndoStack) Clear() {
	clear(u.snapshots)
	u.snapshots = u.snapshots[:0]
}
