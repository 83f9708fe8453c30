package kafka

import (
	// Go Internal Packages
	"errors"
	"fmt"
	"strings"

	// External Packages
	"github.com/twmb/franz-go/pkg/kgo"
)

// Acks specifies the broker acknowledgment requirements.
type Acks string

const (
	// AcksAll requires all ISR replicas to acknowledge (strongest durability).
	AcksAll Acks = "all"

	// AcksLeader requires only the leader replica to acknowledge.
	AcksLeader Acks = "leader"

	// AcksNone requires no acknowledgment.
	AcksNone Acks = "none"
)

var acksTypes = map[Acks]kgo.Acks{
	AcksAll:    kgo.AllISRAcks(),
	AcksLeader: kgo.LeaderAck(),
	AcksNone:   kgo.NoAck(),
}

var acksList = []string{string(AcksAll), string(AcksLeader), string(AcksNone)}

// ValidateAcks accepts the known levels or empty (meaning all).
func ValidateAcks(acks Acks) error {
	if acks == "" {
		return nil
	}
	if _, ok := acksTypes[acks]; ok {
		return nil
	}

	list := "'" + strings.Join(acksList, "', '") + "'"
	return errors.Join(ErrValidation,
		fmt.Errorf("acks '%s' is invalid: must be %s or empty", acks, list))
}

func (a Acks) kgoAcks() kgo.Acks {
	if acks, ok := acksTypes[a]; ok {
		return acks
	}
	return kgo.AllISRAcks()
}
