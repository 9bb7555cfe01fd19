package ring

import (
	"bytes"
	stderrors "errors"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/ringbuffer/errors"
	"github.com/c360/ringbuffer/pkg/ring/element"
)

func TestNew_RejectsSmallCapacity(t *testing.T) {
	for _, capacity := range []int{-3, 0, 1} {
		r, err := New[int](capacity)
		require.Error(t, err, "capacity %d", capacity)
		assert.Nil(t, r)
		assert.True(t, errors.IsInvalid(err))
		assert.True(t, stderrors.Is(err, errors.ErrInvalidCapacity))
	}

	assert.Panics(t, func() { MustNew[int](1) })
}

func TestNew_InitialState(t *testing.T) {
	r, err := New[int](MinCapacity)
	require.NoError(t, err)

	assert.Equal(t, 2, r.Capacity())
	assert.True(t, r.Empty())
	assert.False(t, r.Full())
	assert.Equal(t, 0, r.Size())
	assert.Equal(t, 0, r.read)
	assert.Equal(t, 0, r.write)

	// A capacity-2 ring holds exactly one element
	assert.True(t, r.Push(1))
	assert.True(t, r.Full())
	assert.False(t, r.Push(2))
}

func TestRing_CapacityBound(t *testing.T) {
	const capacity = 8
	r := MustNew[int](capacity)

	for i := 0; i < capacity-1; i++ {
		require.True(t, r.Push(i), "push %d should succeed", i)
		assert.False(t, r.Empty() && r.Full(), "never both empty and full")
	}
	assert.True(t, r.Full())

	read, write := r.read, r.write
	assert.False(t, r.Push(99), "push into a full ring must fail")
	assert.Equal(t, capacity-1, r.Size())
	assert.Equal(t, read, r.read, "rejected push must not move read")
	assert.Equal(t, write, r.write, "rejected push must not move write")
}

func TestRing_FIFOOrder(t *testing.T) {
	r := MustNew[string](4)

	for _, s := range []string{"a", "b", "c"} {
		require.True(t, r.Push(s))
	}

	var got []string
	for {
		v, ok := r.Pop()
		if !ok {
			break
		}
		got = append(got, v)
	}

	if diff := cmp.Diff([]string{"a", "b", "c"}, got); diff != "" {
		t.Errorf("pop order mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, r.Empty())
}

func TestRing_PopEmpty(t *testing.T) {
	r := MustNew[int](3)

	v, ok := r.Pop()
	assert.False(t, ok)
	assert.Zero(t, v)
	assert.Equal(t, 0, r.read, "pop on empty must not move read")

	_, ok = r.Front()
	assert.False(t, ok)
	_, ok = r.Back()
	assert.False(t, ok)
}

// Mixed element ring at capacity 8: seven pushes fit, the eighth is rejected.
func TestRing_MixedElementScenario(t *testing.T) {
	r := MustNew[element.Element](8)

	assert.True(t, r.Empty())
	require.True(t, r.Push(element.Int(1)))
	assert.Equal(t, 1, r.Size())
	require.True(t, r.Push(element.Text("2")))
	require.True(t, r.Push(element.Int(3)))
	assert.Equal(t, 3, r.Size())
	require.True(t, r.Push(element.Text("4")))
	require.True(t, r.Push(element.Int(5)))
	require.True(t, r.Push(element.Text("6")))
	require.True(t, r.Push(element.Int(7)))
	assert.Equal(t, 7, r.Size())

	assert.False(t, r.Push(element.Int(9)))
	assert.Equal(t, 7, r.Size())

	for i := 0; i < 4; i++ {
		_, ok := r.Pop()
		require.True(t, ok)
	}
	assert.Equal(t, 3, r.Size())

	r.Pop()
	r.Pop()
	assert.Equal(t, 1, r.Size())

	r.Pop()
	assert.True(t, r.Empty())
}

func TestRing_AllElementKinds(t *testing.T) {
	r := MustNew[element.Element](8)

	assert.True(t, r.Push(element.Person{Name: "sander", Age: 51}))
	assert.True(t, r.Push(element.Text("2")))
	assert.True(t, r.Push(element.Int(3)))

	v, ok := r.Back()
	require.True(t, ok)
	assert.Equal(t, element.Person{Name: "sander", Age: 51}, v)
}

func TestRing_FrontAndBack(t *testing.T) {
	r := MustNew[int](8)

	_, ok := r.Front()
	assert.False(t, ok)

	require.True(t, r.Push(42))
	front, _ := r.Front()
	back, _ := r.Back()
	assert.Equal(t, 42, front)
	assert.Equal(t, 42, back)

	require.True(t, r.Push(84))
	front, _ = r.Front()
	back, _ = r.Back()
	assert.Equal(t, 84, front, "front is the newest element")
	assert.Equal(t, 42, back, "back is the oldest element")

	r.Pop()
	front, _ = r.Front()
	back, _ = r.Back()
	assert.Equal(t, 84, front)
	assert.Equal(t, 84, back)
}

func TestRing_FrontWhenWriteWrapped(t *testing.T) {
	r := MustNew[string](4)

	r.Push("a")
	r.Push("b")
	r.Push("c")
	r.Pop()
	require.True(t, r.Push("d"))
	require.Equal(t, 0, r.write, "write should have wrapped to slot 0")

	front, ok := r.Front()
	require.True(t, ok)
	assert.Equal(t, "d", front)

	back, _ := r.Back()
	assert.Equal(t, "b", back)
}

func TestRing_Wraparound(t *testing.T) {
	const capacity = 5
	r := MustNew[int](capacity)

	for i := 1; i < capacity; i++ {
		require.True(t, r.Push(i))
	}
	for i := 1; i < capacity; i++ {
		v, ok := r.Pop()
		require.True(t, ok)
		require.Equal(t, i, v)
	}
	require.True(t, r.Empty())

	second := []int{10, 20, 30, 40}
	for _, v := range second {
		require.True(t, r.Push(v))
	}
	assert.True(t, r.Full())
	assert.Less(t, r.write, r.read, "write cursor should have wrapped behind read")

	if diff := cmp.Diff(second, r.Values()); diff != "" {
		t.Errorf("values after wraparound (-want +got):\n%s", diff)
	}
	for _, want := range second {
		v, _ := r.Pop()
		assert.Equal(t, want, v)
	}
}

func TestRing_SizeWhenWrapped(t *testing.T) {
	r := MustNew[int](6)
	r.read, r.write = 4, 1

	assert.Equal(t, 3, r.Size())
	assert.False(t, r.Empty())
	assert.False(t, r.Full())

	r.read, r.write = 2, 1
	assert.True(t, r.Full())
	assert.Equal(t, 5, r.Size())
}

func TestRing_TryPushTryPop(t *testing.T) {
	r := MustNew[int](2)

	_, err := r.TryPop()
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrBufferEmpty))
	assert.True(t, errors.IsTransient(err))

	require.NoError(t, r.TryPush(7))

	err = r.TryPush(8)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrBufferFull))
	assert.True(t, errors.IsTransient(err))
	assert.Contains(t, err.Error(), "Ring.TryPush")

	v, err := r.TryPop()
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestRing_Clear(t *testing.T) {
	r := MustNew[*int](4)
	x, y := 1, 2
	r.Push(&x)
	r.Push(&y)
	r.Pop()

	r.Clear()

	assert.True(t, r.Empty())
	assert.Equal(t, 0, r.read)
	assert.Equal(t, 0, r.write)
	for i, p := range r.storage {
		assert.Nil(t, p, "slot %d should be cleared", i)
	}

	require.True(t, r.Push(&x))
	v, _ := r.Back()
	assert.Same(t, &x, v)
}

func TestRing_RejectCallback(t *testing.T) {
	var rejected []int
	r := MustNew[int](3, WithRejectCallback[int](func(v int) {
		rejected = append(rejected, v)
	}))

	for i := 1; i <= 5; i++ {
		r.Push(i)
	}

	assert.Equal(t, []int{3, 4, 5}, rejected)
	assert.Equal(t, []int{1, 2}, r.Values())
}

func TestRing_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	r := MustNew[int](2, WithLogger[int](logger))
	assert.Contains(t, buf.String(), "Ring created")
	assert.Contains(t, buf.String(), "capacity=2")

	r.Push(1)
	r.Push(2)
	assert.Contains(t, buf.String(), "push rejected")
}

func TestApply(t *testing.T) {
	r := MustNew[int](4)
	r.Push(1)
	r.Push(2)
	r.Push(3)
	r.Pop()

	slots := Apply(r, func(storage []int) int { return len(storage) })
	assert.Equal(t, 4, slots)

	// The raw view includes the slot already popped
	raw := Apply(r, func(storage []int) []int { return append([]int(nil), storage...) })
	assert.Equal(t, []int{1, 2, 3, 0}, raw)
}

func TestNilOptionIgnored(t *testing.T) {
	r, err := New[int](4, nil, WithMetrics[int](nil, "x"), WithMetrics[int](nil, ""))
	require.NoError(t, err)
	assert.Nil(t, r.metrics)
	assert.NoError(t, r.Close())
}
