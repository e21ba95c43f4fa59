package nn

import (
	"fmt"
	"strconv"

	"github.com/born-ml/nanograd/internal/engine"
)

// stateDict pairs each parameter with its key. keys and params must be in
// the same order.
func stateDict(params []*engine.Value, keys []string) map[string]float64 {
	sd := make(map[string]float64, len(params))
	for i, p := range params {
		sd[keys[i]] = p.Data()
	}
	return sd
}

// loadStateDict copies sd into params after checking that every key exists.
func loadStateDict(owner string, params []*engine.Value, keys []string, sd map[string]float64) error {
	values := make([]float64, len(keys))
	for i, key := range keys {
		v, ok := sd[key]
		if !ok {
			return fmt.Errorf("%s.LoadStateDict: %q: %w", owner, key, ErrMissingParameter)
		}
		values[i] = v
	}

	for i, p := range params {
		if err := p.SetData(values[i]); err != nil {
			return fmt.Errorf("%s.LoadStateDict: %q: %w", owner, keys[i], err)
		}
	}
	return nil
}

// prefixKeys prepends "<index>." to every key.
func prefixKeys(index int, keys []string) []string {
	prefix := strconv.Itoa(index) + "."
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = prefix + k
	}
	return out
}
