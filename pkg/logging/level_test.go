package logging

import (
	"testing"
)

func TestLevelNameRoundTrip(t *testing.T) {
	for level := LevelDisabled; level <= LevelTrace; level++ {
		if converted, ok := NameToLevel(level.String()); !ok {
			t.Errorf("unable to convert name for level %d", level)
		} else if converted != level {
			t.Errorf("level mismatch: %v != %v", converted, level)
		}
	}
}

func TestLevelNameInvalid(t *testing.T) {
	if level, ok := NameToLevel("verbose"); ok {
		t.Error("invalid level name accepted")
	} else if level != LevelDisabled {
		t.Error("invalid level name did not yield disabled level")
	}
	if name := Level(100).String(); name != "unknown" {
		t.Error("unexpected name for invalid level:", name)
	}
}

func TestLevelFlagValue(t *testing.T) {
	var level Level
	if err := level.Set("debug"); err != nil {
		t.Fatal("unable to set level:", err)
	} else if level != LevelDebug {
		t.Error("level not set correctly:", level)
	}
	if err := level.Set("loud"); err == nil {
		t.Error("invalid level accepted")
	} else if level != LevelDebug {
		t.Error("level modified by invalid set")
	}
}
