package internal

import (
	"reflect"
	"testing"
)

func TestVocabBuild(t *testing.T) {
	v := &Vocabulary{}
	for _, w := range []string{"take", "lamp", "brass", "lamp", "take"} {
		v.RawAdd(w)
	}
	if v.Len() != 0 || v.Index("lamp") != -1 {
		t.Errorf("unbuilt vocabulary has words")
	}
	v.Build()
	if !v.Built() {
		t.Errorf("Built false after Build")
	}
	if got := v.Words(); !reflect.DeepEqual(got, []string{"brass", "lamp", "take"}) {
		t.Errorf("wrong words: %v", got)
	}
	for i, w := range v.Words() {
		if v.Index(w) != i || v.Word(i) != w {
			t.Errorf("word %d %q does not round trip", i, w)
		}
	}
	if v.Index("cloak") != -1 || v.Word(3) != "" || v.Word(-1) != "" {
		t.Errorf("unknown words found")
	}
	v.Build()
	if v.Len() != 3 {
		t.Errorf("second Build changed vocabulary: %v", v.Words())
	}
}

func TestVocabRawAddResult(t *testing.T) {
	v := &Vocabulary{}
	if !v.RawAdd("a") {
		t.Errorf("first add reported duplicate")
	}
	if v.RawAdd("a") {
		t.Errorf("second add reported new")
	}
}

func TestVocabRawAddAfterBuild(t *testing.T) {
	v := &Vocabulary{}
	v.Build()
	defer func() {
		if recover() == nil {
			t.Errorf("RawAdd after Build did not panic")
		}
	}()
	v.RawAdd("a")
}
