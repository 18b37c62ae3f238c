// Package testpayload generates predictable fake payloads for tests.
package testpayload

import (
	"encoding/json"
	"math/rand"
	"sync"

	"github.com/fxamacker/cbor/v2"
	"github.com/go-faker/faker/v4"
)

// Payload is the predictable payload structure; faker tags drive the
// generated field values.
type Payload struct {
	ID     string  `faker:"uuid_hyphenated" json:"id"`
	Name   string  `faker:"name" json:"name"`
	Value  float64 `faker:"lat" json:"value"`
	Active bool    `json:"active"`
	Time   int64   `faker:"unix_time" json:"time"`
}

// SeedRandom makes subsequent payload generation deterministic.
func SeedRandom(seed int64) {
	faker.SetRandomSource(rand.NewSource(seed)) // #nosec G404 -- test data generator
}

func generatePayload() Payload {
	var p Payload
	if err := faker.FakeData(&p); err != nil {
		p = Payload{ID: "00000000-0000-0000-0000-000000000000", Name: "default"}
	}
	return p
}

// GenerateRandomJSON creates a JSON payload with random field values.
func GenerateRandomJSON() ([]byte, error) {
	return json.Marshal(generatePayload())
}

// GenerateRandomCBOR creates a CBOR payload with random field values.
func GenerateRandomCBOR() ([]byte, error) {
	return cbor.Marshal(generatePayload())
}

// GenerateSentence returns a random sentence for text payloads.
func GenerateSentence() string {
	return faker.Sentence()
}

var counter int
var counterMu sync.Mutex

// GenerateCounter returns a process-wide monotonically increasing counter,
// useful for distinguishing messages in ordered delivery tests.
func GenerateCounter() int {
	counterMu.Lock()
	defer counterMu.Unlock()
	counter++
	return counter
}
