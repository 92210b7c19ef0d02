package observability

import (
	"context"
	"testing"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Drag hooks
	d := NoopDragHooks{}
	d.OnBegin(ctx, "id", 0)
	d.OnResolve(ctx, "id", DragEvent{Dragging: 0, Current: 0, Proposed: 1, DropIndex: 2}, nil)
	d.OnCommit(ctx, "id", 3)
	d.OnCancel(ctx, "id", 0)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "svg")
	c.OnCacheMiss(ctx, "svg")
	c.OnCacheSet(ctx, "svg", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Drag().(NoopDragHooks); !ok {
		t.Error("Drag() should return NoopDragHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	// Set custom hooks
	customDrag := &testDragHooks{}
	SetDragHooks(customDrag)
	if Drag() != customDrag {
		t.Error("SetDragHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Drag().(NoopDragHooks); !ok {
		t.Error("Reset() should restore NoopDragHooks")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Reset() should restore NoopCacheHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testDragHooks{}
	SetDragHooks(custom)

	// Setting nil should be ignored
	SetDragHooks(nil)

	if Drag() != custom {
		t.Error("SetDragHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testDragHooks struct{ NoopDragHooks }
type testCacheHooks struct{ NoopCacheHooks }
