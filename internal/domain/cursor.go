package domain

// Cursor is a rewindable position over a resolved post collection.
type Cursor struct {
	items []*Post
	index int
}

// NewCursor returns a Cursor positioned at the first post.
func NewCursor(items []*Post) *Cursor {
	return &Cursor{items: items}
}

// Valid reports whether the cursor points at a post.
func (c *Cursor) Valid() bool {
	return c.index < len(c.items)
}

// Current returns the post under the cursor, or nil when exhausted.
func (c *Cursor) Current() *Post {
	if !c.Valid() {
		return nil
	}
	return c.items[c.index]
}

// Next moves the cursor one post forward.
func (c *Cursor) Next() {
	if c.Valid() {
		c.index++
	}
}

// Rewind moves the cursor back to the first post.
func (c *Cursor) Rewind() {
	c.index = 0
}

// Len returns the size of the collection.
func (c *Cursor) Len() int {
	return len(c.items)
}
