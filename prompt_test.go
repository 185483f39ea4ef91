package repurpose_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/fwojciec/repurpose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrompt_SystemContainsToneDirective(t *testing.T) {
	t.Parallel()

	for _, tone := range repurpose.Tones() {
		p := repurpose.BuildPrompt("content", tone)
		assert.Contains(t, p.System, tone.Directive())
	}
}

func TestBuildPrompt_SystemDemandsBareJSON(t *testing.T) {
	t.Parallel()

	p := repurpose.BuildPrompt("content", repurpose.ToneCasual)

	assert.Contains(t, p.System, "STRICTLY valid JSON")
	assert.Contains(t, p.System, "code fences")
	assert.Contains(t, p.System, "commentary")
}

func TestBuildPrompt_UserContainsContentBeforeSchema(t *testing.T) {
	t.Parallel()

	p := repurpose.BuildPrompt("The quick brown fox.", repurpose.ToneProfessional)

	assert.Contains(t, p.User, "The quick brown fox.")
	assert.Less(t, strings.Index(p.User, "The quick brown fox."), strings.Index(p.User, `"linkedin"`))
}

func TestBuildPrompt_UserContainsEverySchemaKey(t *testing.T) {
	t.Parallel()

	p := repurpose.BuildPrompt("content", repurpose.ToneProfessional)

	for _, section := range repurpose.Schema {
		assert.Contains(t, p.User, `"`+section.Key+`"`)
		for _, field := range section.Fields {
			assert.Contains(t, p.User, `"`+field.Key+`"`)
		}
	}
}

func TestBuildPrompt_IsDeterministic(t *testing.T) {
	t.Parallel()

	a := repurpose.BuildPrompt("same text", repurpose.ToneWitty)
	b := repurpose.BuildPrompt("same text", repurpose.ToneWitty)

	assert.Equal(t, a, b)
}

func TestBuildPrompt_UnknownToneFallsBackToProfessional(t *testing.T) {
	t.Parallel()

	p := repurpose.BuildPrompt("content", repurpose.Tone("unknown"))

	assert.Contains(t, p.System, repurpose.ToneProfessional.Directive())
}

func TestSchemaDescription_IsValidJSON(t *testing.T) {
	t.Parallel()

	var parsed map[string]map[string]string
	err := json.Unmarshal([]byte(repurpose.SchemaDescription()), &parsed)

	require.NoError(t, err)
	require.Len(t, parsed, 4)
	assert.Equal(t, "SEO meta title under 60 characters", parsed["meta"]["title"])
}
