package position

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	positions := []Position{
		Templates[0].Instantiate("a", fixedNow),
		Blank("b", fixedNow),
	}
	positions[1].InterviewQuestions = []InterviewQuestion{{Category: "Values", Question: "Why?"}}

	data, err := Encode(positions)
	require.NoError(t, err)
	require.Contains(t, string(data), `"version": 1`)

	decoded, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, positions, decoded)
}

func TestEncodeNilCollection(t *testing.T) {
	data, err := Encode(nil)
	require.NoError(t, err)
	decoded, err := Decode(data)
	require.NoError(t, err)
	require.NotNil(t, decoded)
	require.Empty(t, decoded)
}

func TestDecodeLegacyArray(t *testing.T) {
	legacy := `[{"id":"lz1","title":"Front Desk Associate","department":"Front Desk","reportsTo":"","type":"Part-Time",
"responsibilities":["Greet"],"requiredSkills":[],"brandValues":["Accountability"],"interviewQuestions":[],
"evaluationCriteria":[{"name":"Culture Fit","weight":25}],"onboarding":[{"phase":"First 30 Days","tasks":["Shadow"]}],
"notes":"","createdAt":"2025-01-02T03:04:05.678Z","updatedAt":"2025-01-02T03:04:05.678Z","extra":"ignored"}]`
	decoded, err := Decode([]byte(legacy))
	require.NoError(t, err)
	require.Len(t, decoded, 1)
	require.Equal(t, "lz1", decoded[0].ID)
	require.Equal(t, 678, decoded[0].CreatedAt.Nanosecond()/1e6)
	require.Equal(t, []Criterion{{Name: "Culture Fit", Weight: 25}}, decoded[0].EvaluationCriteria)
}

func TestDecodeBlank(t *testing.T) {
	decoded, err := Decode([]byte("   "))
	require.NoError(t, err)
	require.Empty(t, decoded)
}

func TestDecodeRejectsCorruptData(t *testing.T) {
	cases := map[string]string{
		"truncated":       `{"version":1,"positions":[{"id":"a"`,
		"scalar":          `42`,
		"null":            `null`,
		"future version":  `{"version":2,"positions":[]}`,
		"missing version": `{"positions":[]}`,
		"missing id":      `[{"title":"x","createdAt":"2025-01-02T03:04:05Z","updatedAt":"2025-01-02T03:04:05Z"}]`,
		"missing created": `[{"id":"a","updatedAt":"2025-01-02T03:04:05Z"}]`,
		"bad timestamp":   `[{"id":"a","createdAt":"yesterday","updatedAt":"2025-01-02T03:04:05Z"}]`,
		"wrong weight":    `[{"id":"a","evaluationCriteria":[{"name":"x","weight":"ten"}],"createdAt":"2025-01-02T03:04:05Z","updatedAt":"2025-01-02T03:04:05Z"}]`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode([]byte(raw))
			require.Error(t, err)
		})
	}
}

func TestDecodeRejectsDuplicateIDs(t *testing.T) {
	p := Blank("dup", fixedNow)
	data, err := Encode([]Position{p, p})
	require.NoError(t, err)
	_, err = Decode(data)
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "duplicate id"))
}
