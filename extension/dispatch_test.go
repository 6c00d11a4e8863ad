package extension

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDispatchStore(t *testing.T) *MemoryExtensionStore {
	t.Helper()

	store := NewMemoryExtensionStore()
	require.NoError(t, store.Add(Extension{
		Target: TargetOf[frame](),
		Name:   "scale",
		Kind:   KindMethod,
		Value:  func(f frame, n int) int { return f.Rows * n },
		Bound:  true,
	}))
	require.NoError(t, store.Add(Extension{
		Target: TargetOf[frame](),
		Name:   "greeting",
		Kind:   KindMethod,
		Value:  func() string { return "hi" },
		Bound:  false,
	}))
	require.NoError(t, store.Add(Extension{
		Target: TargetOf[frame](),
		Name:   "checked",
		Kind:   KindMethod,
		Value: func(f frame) (int, error) {
			if f.Rows < 0 {
				return 0, errors.New("negative rows")
			}

			return f.Rows, nil
		},
		Bound: true,
	}))
	require.NoError(t, store.Add(Extension{
		Target: TargetOf[frame](),
		Name:   "size",
		Kind:   KindProperty,
		Value: Property{GetFunc: func(recv any) (any, error) {
			return recv.(frame).Rows, nil
		}},
	}))
	require.NoError(t, store.Add(Extension{
		Target: TargetOf[frame](),
		Name:   "limit",
		Kind:   KindConstant,
		Value:  100,
	}))

	return store
}

func TestInvoke(t *testing.T) {
	t.Parallel()

	store := newDispatchStore(t)

	tests := []struct {
		name        string
		giveRecv    any
		giveName    string
		giveArgs    []any
		want        any
		wantErr     string
	}{
		{
			name:     "success: bound method receives the instance",
			giveRecv: frame{Rows: 2},
			giveName: "scale",
			giveArgs: []any{3},
			want:     6,
		},
		{
			name:     "success: static method called without receiver",
			giveRecv: frame{},
			giveName: "greeting",
			want:     "hi",
		},
		{
			name:     "success: pointer receiver falls back to value target",
			giveRecv: &frame{Rows: 4},
			giveName: "scale",
			giveArgs: []any{2},
			want:     8,
		},
		{
			name:     "success: trailing error result is split off",
			giveRecv: frame{Rows: 5},
			giveName: "checked",
			want:     5,
		},
		{
			name:     "error: method returns error",
			giveRecv: frame{Rows: -1},
			giveName: "checked",
			wantErr:  "negative rows",
		},
		{
			name:     "error: unknown extension",
			giveRecv: frame{},
			giveName: "missing",
			wantErr:  ErrExtensionNotFound.Error(),
		},
		{
			name:     "error: wrong kind",
			giveRecv: frame{},
			giveName: "size",
			wantErr:  "is a property, not a method",
		},
		{
			name:     "error: wrong argument count",
			giveRecv: frame{Rows: 2},
			giveName: "scale",
			giveArgs: []any{},
			wantErr:  "takes 2 arguments, got 1",
		},
		{
			name:     "error: argument not assignable",
			giveRecv: frame{Rows: 2},
			giveName: "scale",
			giveArgs: []any{"three"},
			wantErr:  "not assignable",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Invoke(store, tt.giveRecv, tt.giveName, tt.giveArgs...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInvoke_Variadic(t *testing.T) {
	t.Parallel()

	store := NewMemoryExtensionStore()
	require.NoError(t, store.Add(Extension{
		Target: TargetOf[frame](),
		Name:   "sum",
		Kind:   KindMethod,
		Value: func(f frame, ns ...int) int {
			total := f.Rows
			for _, n := range ns {
				total += n
			}

			return total
		},
		Bound: true,
	}))

	got, err := Invoke(store, frame{Rows: 1}, "sum", 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 6, got)

	got, err = Invoke(store, frame{Rows: 1}, "sum")
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestGet(t *testing.T) {
	t.Parallel()

	store := newDispatchStore(t)

	got, err := Get(store, frame{Rows: 7}, "size")
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	_, err = Get(store, frame{}, "limit")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a constant, not a property")

	_, err = Get(store, frame{}, "missing")
	require.ErrorIs(t, err, ErrExtensionNotFound)
}

func TestValue(t *testing.T) {
	t.Parallel()

	store := newDispatchStore(t)

	got, err := Value(store, TargetOf[frame](), "limit")
	require.NoError(t, err)
	assert.Equal(t, 100, got)

	_, err = Value(store, TargetOf[frame](), "scale")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a method, not a constant")

	_, err = Value(store, TargetOf[frame](), "missing")
	require.ErrorIs(t, err, ErrExtensionNotFound)
}

func TestHas(t *testing.T) {
	t.Parallel()

	store := newDispatchStore(t)

	assert.True(t, Has(store, TargetOf[frame](), "size"))
	assert.False(t, Has(store, TargetOf[frame](), "missing"))
	assert.False(t, Has(store, TargetOf[crate](), "size"))
}

func TestInvoke_MultipleResults(t *testing.T) {
	t.Parallel()

	store := NewMemoryExtensionStore()
	require.NoError(t, store.Add(Extension{
		Target: TargetOf[frame](),
		Name:   "bounds",
		Kind:   KindMethod,
		Value:  func(f frame) (int, int) { return 0, f.Rows },
		Bound:  true,
	}))

	got, err := Invoke(store, frame{Rows: 3}, "bounds")
	require.NoError(t, err)
	assert.Equal(t, []any{0, 3}, got)
}

func ExampleInvoke() {
	store := NewMemoryExtensionStore()
	_ = store.Add(Extension{
		Target: TargetOf[frame](),
		Name:   "double",
		Kind:   KindMethod,
		Value:  func(f frame) int { return f.Rows * 2 },
		Bound:  true,
	})

	out, _ := Invoke(store, frame{Rows: 21}, "double")
	fmt.Println(out)
	// Output: 42
}
