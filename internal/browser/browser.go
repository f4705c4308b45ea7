package browser

import (
	"context"
	"fmt"
	"sync"

	"classboard/internal/domain"
	"classboard/internal/domain/models"
)

// Lister fetches the children of a folder; parent "" is the root.
// *Client satisfies it.
type Lister interface {
	List(ctx context.Context, parent string) ([]models.Node, error)
}

// Crumb is one breadcrumb entry: the folder id that was current before
// a folder was opened, and the opened folder's display name.
type Crumb struct {
	ID   string
	Name string
}

// RootLabel is the fixed first breadcrumb.
const RootLabel = "Root"

// Browser is the navigation state machine of the notes drive: the
// current folder, the breadcrumb stack, and the cached listing of the
// current folder's children.
//
// The listing cache is replaced wholesale after every navigation and
// after every mutation; it is never patched incrementally. Every
// navigation bumps a sequence number and a fetch that arrives after a
// newer navigation is discarded, so rapid back-to-back navigation can
// never leave the items of a stale folder on display.
type Browser struct {
	mu      sync.Mutex
	lister  Lister
	current string // "" = root
	stack   []Crumb
	items   []models.Node
	seq     uint64
}

// NewBrowser creates a browser positioned at the root with an empty
// listing. Call Refresh to populate it.
func NewBrowser(lister Lister) *Browser {
	return &Browser{lister: lister}
}

// Open navigates down into a folder and refreshes the listing. Only
// folder nodes can be opened.
func (b *Browser) Open(ctx context.Context, folder models.Node) error {
	if !folder.IsFolder() {
		return fmt.Errorf("%w: %q is not a folder", domain.ErrValidation, folder.Name)
	}

	b.mu.Lock()
	b.stack = append(b.stack, Crumb{ID: b.current, Name: folder.Name})
	b.current = folder.ID
	b.seq++
	seq := b.seq
	target := b.current
	b.mu.Unlock()

	return b.fetch(ctx, target, seq)
}

// Back navigates up one level and refreshes the listing. At the root
// it is a no-op.
func (b *Browser) Back(ctx context.Context) error {
	b.mu.Lock()
	if len(b.stack) == 0 {
		b.mu.Unlock()
		return nil
	}
	prev := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	b.current = prev.ID
	b.seq++
	seq := b.seq
	target := b.current
	b.mu.Unlock()

	return b.fetch(ctx, target, seq)
}

// Refresh re-fetches the current folder's listing. Used on startup and
// after every mutation that changes the current folder's contents.
func (b *Browser) Refresh(ctx context.Context) error {
	b.mu.Lock()
	b.seq++
	seq := b.seq
	target := b.current
	b.mu.Unlock()

	return b.fetch(ctx, target, seq)
}

// fetch lists the target folder and installs the result unless a newer
// navigation happened while the request was in flight. A failed fetch
// leaves the previous items untouched.
func (b *Browser) fetch(ctx context.Context, target string, seq uint64) error {
	nodes, err := b.lister.List(ctx, target)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if seq != b.seq {
		// A newer navigation superseded this fetch; drop the response.
		return nil
	}

	b.items = nodes
	return nil
}

// CurrentFolder returns the id of the folder being viewed, "" at root.
func (b *Browser) CurrentFolder() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.current
}

// AtRoot reports whether the browser is at the top level.
func (b *Browser) AtRoot() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.stack) == 0
}

// Depth returns the number of folders opened above the current view.
func (b *Browser) Depth() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.stack)
}

// Path returns a copy of the breadcrumb stack, root-to-current order.
func (b *Browser) Path() []Crumb {
	b.mu.Lock()
	defer b.mu.Unlock()
	path := make([]Crumb, len(b.stack))
	copy(path, b.stack)
	return path
}

// Breadcrumbs renders the breadcrumb trail as display labels. It is a
// pure projection of the path stack plus the fixed root label.
func (b *Browser) Breadcrumbs() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	labels := make([]string, 0, len(b.stack)+1)
	labels = append(labels, RootLabel)
	for _, crumb := range b.stack {
		labels = append(labels, crumb.Name)
	}
	return labels
}

// Items returns a copy of the most recently fetched listing.
func (b *Browser) Items() []models.Node {
	b.mu.Lock()
	defer b.mu.Unlock()
	items := make([]models.Node, len(b.items))
	copy(items, b.items)
	return items
}
