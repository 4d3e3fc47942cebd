package llrb

import s "github.com/bnclabs/gosettings"

// Defaultsettings for llrb instance.
//
// "iterpool.size": int64(100)
//      Maximum number of free iterators cached by this instance.
//      Each Iterate call acquires an instance of iterator.
//
// "maxlimit": int64(100)
//      Applicable for Iterate() API. Iterators fetch a batch of
//      entries in every refill, limit the batch size if the number
//      of iterations is known apriori.
//
func Defaultsettings() s.Settings {
	return s.Settings{
		"iterpool.size": int64(100),
		"maxlimit":      int64(100),
	}
}

func (llrb *Llrb[K, V]) readsettings(setts s.Settings) {
	llrb.iterpoolsize = setts.Int64("iterpool.size")
	llrb.maxlimit = setts.Int64("maxlimit")
	if llrb.iterpoolsize < 0 || llrb.maxlimit <= 0 {
		panic("readsettings(): invalid settings for llrb instance")
	}
}
