package wideint

import "sync"

type pow10Key struct {
	width int
	exp   int
}

var pow10Cache sync.Map // pow10Key -> Uint

// Pow10 returns 10^exp as a width-limb Uint, computed once per (width, exp)
// pair and cached. exp must be >= 0 and the result must fit in width limbs.
func Pow10(width, exp int) Uint {
	key := pow10Key{width, exp}
	if v, ok := pow10Cache.Load(key); ok {
		return v.(Uint)
	}
	result := UintFromUint64(width, 1)
	ten := UintFromUint64(width, 10)
	for i := 0; i < exp; i++ {
		result, _ = result.Mul(ten)
	}
	pow10Cache.Store(key, result)
	return result
}
