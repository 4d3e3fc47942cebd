package llrb

import "math/rand"
import "testing"

import s "github.com/bnclabs/gosettings"
import "github.com/stretchr/testify/require"

func TestIterate(t *testing.T) {
	// a small batch limit exercises iterator refills.
	setts := s.Settings{"maxlimit": int64(7)}
	llrb := NewLlrb[int64, int64]("iterate", setts)

	rnd := rand.New(rand.NewSource(13))
	for _, i := range rnd.Perm(100) {
		llrb.Set(int64(i), int64(i)*10)
	}

	iter := llrb.Iterate(nil, nil, "both", false)
	prev, count := int64(-1), 0
	for key, value, ok := iter.Next(); ok; key, value, ok = iter.Next() {
		require.Greater(t, key, prev, "keys shall come up ascending")
		require.Equal(t, key*10, value)
		prev, count = key, count+1
	}
	require.Equal(t, 100, count)
	iter.Close()

	// exhausted iterator stays exhausted.
	iter = llrb.Iterate(nil, nil, "both", false)
	for _, _, ok := iter.Next(); ok; _, _, ok = iter.Next() {
	}
	if _, _, ok := iter.Next(); ok {
		t.Errorf("expected exhausted iterator")
	}
	iter.Close()
}

func TestIterateReverse(t *testing.T) {
	setts := s.Settings{"maxlimit": int64(3)}
	llrb := NewLlrb[int64, int64]("reverse", setts)
	rnd := rand.New(rand.NewSource(17))
	for _, i := range rnd.Perm(50) {
		llrb.Set(int64(i), int64(i))
	}

	forward := []int64{}
	iter := llrb.Iterate(nil, nil, "both", false)
	for key, _, ok := iter.Next(); ok; key, _, ok = iter.Next() {
		forward = append(forward, key)
	}
	iter.Close()

	backward := []int64{}
	iter = llrb.Iterate(nil, nil, "both", true)
	for key, _, ok := iter.Next(); ok; key, _, ok = iter.Next() {
		backward = append(backward, key)
	}
	iter.Close()

	require.Equal(t, len(forward), len(backward))
	for i, key := range forward {
		require.Equal(t, key, backward[len(backward)-1-i])
	}
}

func TestIterateBounds(t *testing.T) {
	llrb := NewLlrb[int64, int64]("bounds", nil)
	for i := int64(10); i <= 100; i += 10 {
		llrb.Set(i, i)
	}

	low, high := int64(20), int64(60)
	testcases := []struct {
		incl string
		ref  []int64
	}{
		{"both", []int64{20, 30, 40, 50, 60}},
		{"low", []int64{20, 30, 40, 50}},
		{"high", []int64{30, 40, 50, 60}},
		{"none", []int64{30, 40, 50}},
	}
	for _, tcase := range testcases {
		iter := llrb.Iterate(&low, &high, tcase.incl, false)
		keys := []int64{}
		for key, _, ok := iter.Next(); ok; key, _, ok = iter.Next() {
			keys = append(keys, key)
		}
		iter.Close()
		require.Equal(t, tcase.ref, keys, "incl %v", tcase.incl)

		// and the same set in reverse.
		iter = llrb.Iterate(&low, &high, tcase.incl, true)
		keys = []int64{}
		for key, _, ok := iter.Next(); ok; key, _, ok = iter.Next() {
			keys = append(keys, key)
		}
		iter.Close()
		for i, key := range tcase.ref {
			require.Equal(t, key, keys[len(keys)-1-i], "incl %v", tcase.incl)
		}
	}
}

func TestIteratorPool(t *testing.T) {
	llrb := NewLlrb[int64, int64]("pool", nil)
	for i := int64(0); i < 10; i++ {
		llrb.Set(i, i)
	}

	iter := llrb.Iterate(nil, nil, "both", false)
	if err := llrb.Destroy(); err != ErrorActiveIterators {
		t.Errorf("expected %v, got %v", ErrorActiveIterators, err)
	}
	iter.Close()
	iter.Close() // second close is a no-op

	func() {
		defer func() {
			if recover() == nil {
				t.Errorf("expected panic")
			}
		}()
		iter.Next()
	}()

	// closed iterator is recycled.
	newiter := llrb.Iterate(nil, nil, "both", false)
	if newiter != iter {
		t.Errorf("expected iterator to come from the pool")
	}
	key, _, ok := newiter.Next()
	if !ok || key != 0 {
		t.Errorf("expected {0,true}, got {%v,%v}", key, ok)
	}
	newiter.Close()

	if err := llrb.Destroy(); err != nil {
		t.Error(err)
	}
}

func TestRangeCallback(t *testing.T) {
	llrb := NewLlrb[string, string]("rangecb", nil)
	for _, key := range []string{"a", "b", "c", "d", "e"} {
		llrb.Set(key, key)
	}

	keys := []string{}
	low, high := "b", "d"
	llrb.Range(&low, &high, "both", false, func(key, _ string) bool {
		keys = append(keys, key)
		return true
	})
	require.Equal(t, []string{"b", "c", "d"}, keys)

	// early stop.
	keys = keys[:0]
	llrb.Range(nil, nil, "both", false, func(key, _ string) bool {
		keys = append(keys, key)
		return len(keys) < 2
	})
	require.Equal(t, []string{"a", "b"}, keys)

	// descending.
	keys = keys[:0]
	llrb.Range(nil, nil, "both", true, func(key, _ string) bool {
		keys = append(keys, key)
		return true
	})
	require.Equal(t, []string{"e", "d", "c", "b", "a"}, keys)

	func() {
		defer func() {
			if recover() == nil {
				t.Errorf("expected panic")
			}
		}()
		llrb.Range(nil, nil, "middle", false, func(_, _ string) bool {
			return true
		})
	}()
}
