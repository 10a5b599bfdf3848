// Package example holds derived types exercised by tests. Its generated
// file is kept up to date with go generate.
package example

//go:generate go run github.com/signadot/structmap/cmd/structmap-gen

// Record is a named integer setting.
//
//structmap:derive FromMap ToMap
type Record struct {
	Name  string `structmap:"name=name"`
	Value int64  `structmap:"name=value"`
}

// Endpoint is a network endpoint with non-zero defaults.
//
//structmap:derive
type Endpoint struct {
	Host string `structmap:"name=host"`
	Port uint16 `structmap:"name=port"`

	//structmap:name=tls
	TLS bool

	Weight  float32 `structmap:"name=weight"`
	Retries int8    `structmap:"name=retries"`

	Comment string `structmap:"-"`
}

// Default returns localhost:8080 with weight 1.
func (Endpoint) Default() Endpoint {
	return Endpoint{Host: "localhost", Port: 8080, Weight: 1}
}

// Pair is a generic key/value entry.
//
//structmap:derive
type Pair[K ~string, V ~int32 | ~int64] struct {
	Key K `structmap:"name=key"`
	Val V `structmap:"name=value"`
}

// Label only reads from maps.
//
//structmap:derive FromMap
type Label struct {
	Text string
}
