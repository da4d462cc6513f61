package builder

import (
	"encoding/json"
	"io"
	"reflect"
	"strings"

	"github.com/gagliardetto/solana-go"
)

// Options configures a single build call.
type Options struct {
	Overrides map[string]solana.PublicKey
	Preview   io.Writer
}

// Option functional option.
type Option func(*Options)

// WithOverrides replaces derived accounts by field name. Keys may be the Go
// field name, lowerCamel or snake_case ("UserTokenAccount",
// "userTokenAccount", "user_token_account").
func WithOverrides(m map[string]solana.PublicKey) Option {
	return func(o *Options) { o.Overrides = m }
}

// WithPreview writes the resolved accounts and args as JSON to w.
func WithPreview(w io.Writer) Option {
	return func(o *Options) { o.Preview = w }
}

func collect(opts []Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *Options) preview(accounts, args interface{}) {
	if o.Preview == nil {
		return
	}
	_ = json.NewEncoder(o.Preview).Encode(struct {
		Accounts interface{} `json:"accounts"`
		Args     interface{} `json:"args,omitempty"`
	}{accounts, args})
}

// MergeOverridesFromJSON merges base58 pubkeys from a JSON object into dst.
func MergeOverridesFromJSON(dst map[string]solana.PublicKey, jsonBytes []byte) (map[string]solana.PublicKey, error) {
	if dst == nil {
		dst = make(map[string]solana.PublicKey)
	}
	var m map[string]string
	if err := json.Unmarshal(jsonBytes, &m); err != nil {
		return nil, err
	}
	for k, v := range m {
		pk, err := solana.PublicKeyFromBase58(v)
		if err != nil {
			return nil, err
		}
		dst[k] = pk
	}
	return dst, nil
}

// applyOverrides sets PublicKey fields of the struct target points to.
func applyOverrides(target interface{}, m map[string]solana.PublicKey) {
	if len(m) == 0 {
		return
	}
	val := reflect.ValueOf(target)
	if val.Kind() != reflect.Ptr {
		panic("target must be pointer to struct")
	}
	val = reflect.Indirect(val)
	if val.Kind() != reflect.Struct {
		panic("target must be struct")
	}
	pkType := reflect.TypeOf(solana.PublicKey{})
	t := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() || field.Type != pkType {
			continue
		}
		if pk, ok := pickKey(field.Name, m); ok {
			val.Field(i).Set(reflect.ValueOf(pk))
		}
	}
}

func pickKey(name string, m map[string]solana.PublicKey) (solana.PublicKey, bool) {
	for _, k := range []string{name, lowerCamel(name), snake(name)} {
		if pk, ok := m[k]; ok {
			return pk, true
		}
	}
	return solana.PublicKey{}, false
}

func lowerCamel(name string) string {
	if name == "" {
		return ""
	}
	return strings.ToLower(name[:1]) + name[1:]
}

// snake converts CamelCase to snake_case, keeping runs of capitals such as
// "URI" together.
func snake(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		upper := r >= 'A' && r <= 'Z'
		if upper && i > 0 {
			prevLower := runes[i-1] < 'A' || runes[i-1] > 'Z'
			nextLower := i+1 < len(runes) && (runes[i+1] < 'A' || runes[i+1] > 'Z')
			if prevLower || nextLower {
				b.WriteByte('_')
			}
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}
