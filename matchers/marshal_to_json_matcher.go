package matchers

import (
	"encoding/json"
	"fmt"

	"github.com/onsi/gomega"
	"github.com/onsi/gomega/format"
	"github.com/onsi/gomega/types"
)

// MarshalToJSON succeeds when actual encodes to a JSON document equivalent
// to expectedJSON. Key order and whitespace are ignored.
func MarshalToJSON(expectedJSON string) types.GomegaMatcher {
	return &marshalToJSONMatcher{
		expectedJSON: expectedJSON,
	}
}

type marshalToJSONMatcher struct {
	expectedJSON string
	actualJSON   string
}

func (m *marshalToJSONMatcher) Match(actual any) (success bool, err error) {
	bytes, err := json.Marshal(actual)
	if err != nil {
		return false, fmt.Errorf("MarshalToJSON could not encode %s: %w", format.Object(actual, 1), err)
	}

	m.actualJSON = string(bytes)
	return gomega.MatchJSON(m.expectedJSON).Match(m.actualJSON)
}

func (m *marshalToJSONMatcher) FailureMessage(actual any) (message string) {
	return fmt.Sprintf("Expected %T to marshal to\n\t%s\nbut it marshalled to\n\t%s", actual, m.expectedJSON, m.actualJSON)
}

func (m *marshalToJSONMatcher) NegatedFailureMessage(actual any) (message string) {
	return fmt.Sprintf("Expected %T not to marshal to\n\t%s", actual, m.expectedJSON)
}
