package trigger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"razordqm/event"
)

func evtWithHLT(paths map[string]bool) *event.Event {
	return &event.Event{HLT: paths, DCS: []int{24, 25}}
}

func TestFlag_OffAcceptsEverything(t *testing.T) {
	f := New("den", Config{})

	assert.False(t, f.On())
	assert.True(t, f.Accept(&event.Event{}))
}

func TestFlag_HLTVersionWildcard(t *testing.T) {
	// GIVEN a flag on a versioned razor path
	f := New("num", Config{
		AndOrHlt: true,
		HltPaths: []string{"HLT_RsqMR300_Rsq0p09_MR200_v*"},
	})
	assert.True(t, f.On())

	// WHEN the run menu carries version 5 of the path
	f.InitRun(&event.Run{
		Number:  316000,
		HLTMenu: []string{"HLT_Ele35_WPTight_Gsf_v7", "HLT_RsqMR300_Rsq0p09_MR200_v5"},
	})

	// THEN the flag follows the resolved path's decision
	assert.True(t, f.Accept(evtWithHLT(map[string]bool{"HLT_RsqMR300_Rsq0p09_MR200_v5": true})))
	assert.False(t, f.Accept(evtWithHLT(map[string]bool{"HLT_RsqMR300_Rsq0p09_MR200_v5": false})))
}

func TestFlag_UnknownPathUsesErrorReply(t *testing.T) {
	cfg := Config{
		AndOrHlt: true,
		HltPaths: []string{"HLT_NotInMenu_v*"},
	}

	f := New("num", cfg)
	f.InitRun(&event.Run{Number: 1, HLTMenu: []string{"HLT_Else_v1"}})
	assert.False(t, f.Accept(evtWithHLT(map[string]bool{"HLT_Else_v1": true})))

	cfg.ErrorReplyHlt = true
	f = New("num", cfg)
	f.InitRun(&event.Run{Number: 1, HLTMenu: []string{"HLT_Else_v1"}})
	assert.True(t, f.Accept(evtWithHLT(nil)))
}

func TestFlag_HLTAndOrSemantics(t *testing.T) {
	paths := []string{"HLT_A_v1", "HLT_B_v1"}
	results := map[string]bool{"HLT_A_v1": true, "HLT_B_v1": false}

	orFlag := New("num", Config{AndOrHlt: true, HltPaths: paths})
	orFlag.InitRun(&event.Run{Number: 1, HLTMenu: paths})
	assert.True(t, orFlag.Accept(evtWithHLT(results)), "OR: one passing path suffices")

	andFlag := New("num", Config{AndOrHlt: false, HltPaths: paths})
	andFlag.InitRun(&event.Run{Number: 1, HLTMenu: paths})
	assert.False(t, andFlag.Accept(evtWithHLT(results)), "AND: every path must pass")
}

func TestFlag_DcsPartitions(t *testing.T) {
	f := New("den", Config{DcsPartitions: []int{24, 25}})

	assert.True(t, f.Accept(&event.Event{DCS: []int{24, 25, 26}}))
	assert.False(t, f.Accept(&event.Event{DCS: []int{24}}), "AND over partitions")

	orDcs := New("den", Config{DcsPartitions: []int{24, 25}, AndOrDcs: true})
	assert.True(t, orDcs.Accept(&event.Event{DCS: []int{25}}))
	assert.False(t, orDcs.Accept(&event.Event{DCS: []int{3}}))
}

func TestFlag_MissingDcsRecord(t *testing.T) {
	f := New("den", Config{DcsPartitions: []int{24}, ErrorReplyDcs: true})
	assert.True(t, f.Accept(&event.Event{}), "no DCS record falls back to error reply")

	strict := New("den", Config{DcsPartitions: []int{24}, ErrorReplyDcs: false})
	assert.False(t, strict.Accept(&event.Event{}))
}

func TestFlag_CategoryCombination(t *testing.T) {
	cfg := Config{
		DcsPartitions: []int{24},
		AndOrHlt:      true,
		HltPaths:      []string{"HLT_A_v1"},
	}

	// AND of categories: DCS ready but path failing rejects
	f := New("den", cfg)
	f.InitRun(&event.Run{Number: 1, HLTMenu: []string{"HLT_A_v1"}})
	evt := &event.Event{DCS: []int{24}, HLT: map[string]bool{"HLT_A_v1": false}}
	assert.False(t, f.Accept(evt))

	// OR of categories: DCS readiness rescues the same event
	cfg.AndOr = true
	f = New("den", cfg)
	f.InitRun(&event.Run{Number: 1, HLTMenu: []string{"HLT_A_v1"}})
	assert.True(t, f.Accept(evt))
}

func TestFlag_ReInitOnNewRunSwitchesVersion(t *testing.T) {
	f := New("num", Config{AndOrHlt: true, HltPaths: []string{"HLT_RsqMR300_Rsq0p09_MR200_v*"}})

	f.InitRun(&event.Run{Number: 1, HLTMenu: []string{"HLT_RsqMR300_Rsq0p09_MR200_v5"}})
	assert.True(t, f.Accept(evtWithHLT(map[string]bool{"HLT_RsqMR300_Rsq0p09_MR200_v5": true})))

	f.InitRun(&event.Run{Number: 2, HLTMenu: []string{"HLT_RsqMR300_Rsq0p09_MR200_v6"}})
	assert.True(t, f.Accept(evtWithHLT(map[string]bool{"HLT_RsqMR300_Rsq0p09_MR200_v6": true})))
	assert.False(t, f.Accept(evtWithHLT(map[string]bool{"HLT_RsqMR300_Rsq0p09_MR200_v5": true})),
		"stale version from the previous run must not be consulted")
}
