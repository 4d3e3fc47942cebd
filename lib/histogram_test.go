package lib

import "testing"

func TestHistogramInt64(t *testing.T) {
	h := NewhistorgramInt64(1, 256, 1)
	for i := int64(1); i <= 100; i++ {
		h.Add(i)
	}

	if x := h.Samples(); x != 100 {
		t.Errorf("expected %v, got %v", 100, x)
	} else if x := h.Min(); x != 1 {
		t.Errorf("expected %v, got %v", 1, x)
	} else if x := h.Max(); x != 100 {
		t.Errorf("expected %v, got %v", 100, x)
	} else if x := h.Sum(); x != 5050 {
		t.Errorf("expected %v, got %v", 5050, x)
	} else if x := h.Mean(); x != 50 {
		t.Errorf("expected %v, got %v", 50, x)
	}
	if x := h.SD(); x < 28 || x > 29 {
		t.Errorf("expected stddeviance of ~28, got %v", x)
	}
}

func TestHistogramPercentile(t *testing.T) {
	h := NewhistorgramInt64(1, 256, 1)
	for i := int64(1); i <= 100; i++ {
		h.Add(i)
	}

	for _, frac := range []float64{.8, .9, .95, .99} {
		ref := int64(frac*100 + 0.5)
		if x := h.Percentile(frac); x != ref {
			t.Errorf("percentile %v expected %v, got %v", frac, ref, x)
		}
	}

	// all samples identical
	h = NewhistorgramInt64(1, 256, 1)
	for i := 0; i < 10; i++ {
		h.Add(3)
	}
	if x := h.Percentile(.9); x != 3 {
		t.Errorf("expected %v, got %v", 3, x)
	}

	// empty histogram
	h = NewhistorgramInt64(1, 256, 1)
	if x := h.Percentile(.9); x != 0 {
		t.Errorf("expected %v, got %v", 0, x)
	}
}

func TestHistogramOverflow(t *testing.T) {
	h := NewhistorgramInt64(1, 16, 1)
	h.Add(100) // overflow bucket
	h.Add(0)   // underflow bucket
	if x := h.Min(); x != 0 {
		t.Errorf("expected %v, got %v", 0, x)
	} else if x := h.Max(); x != 100 {
		t.Errorf("expected %v, got %v", 100, x)
	}
	if x := h.Percentile(.99); x != 100 {
		t.Errorf("expected %v, got %v", 100, x)
	}
}

func TestHistogramClone(t *testing.T) {
	h := NewhistorgramInt64(1, 256, 1)
	for i := int64(1); i <= 10; i++ {
		h.Add(i)
	}
	newh := h.Clone()
	newh.Add(1000)
	if x, y := h.Samples(), newh.Samples(); x != 10 || y != 11 {
		t.Errorf("expected {10,11}, got {%v,%v}", x, y)
	}
}

func TestHistogramFullstats(t *testing.T) {
	h := NewhistorgramInt64(1, 256, 1)
	for i := int64(1); i <= 100; i++ {
		h.Add(i)
	}
	stats := h.Fullstats()
	if x := stats["samples"].(int64); x != 100 {
		t.Errorf("expected %v, got %v", 100, x)
	}
	percentiles := stats["percentiles"].(map[string]int64)
	for _, key := range []string{"p80", "p90", "p95", "p96", "p97", "p98", "p99"} {
		if _, ok := percentiles[key]; !ok {
			t.Errorf("missing percentile %v", key)
		}
	}
}
