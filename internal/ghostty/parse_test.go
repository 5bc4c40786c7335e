package ghostty

import "testing"

func TestParseKeybindList(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		input := "keybind = ctrl+c=copy\nkeybind = ctrl+v=paste\n"
		keybinds := ParseKeybindList(input)

		if len(keybinds) != 2 {
			t.Fatalf("expected 2 keybinds, got %d", len(keybinds))
		}
		if keybinds[0].Trigger != "ctrl+c" || keybinds[0].Action != "copy" {
			t.Errorf("unexpected first keybind %+v", keybinds[0])
		}
		if keybinds[1].Trigger != "ctrl+v" || keybinds[1].Action != "paste" {
			t.Errorf("unexpected second keybind %+v", keybinds[1])
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := ParseKeybindList(""); len(got) != 0 {
			t.Errorf("expected no keybinds, got %v", got)
		}
	})

	t.Run("skips blank lines", func(t *testing.T) {
		input := "keybind = ctrl+c=copy\n\n\nkeybind = ctrl+v=paste\n"
		if got := ParseKeybindList(input); len(got) != 2 {
			t.Errorf("expected 2 keybinds, got %d", len(got))
		}
	})

	t.Run("complex trigger", func(t *testing.T) {
		keybinds := ParseKeybindList("keybind = ctrl+shift+n=new_window\n")

		if len(keybinds) != 1 {
			t.Fatalf("expected 1 keybind, got %d", len(keybinds))
		}
		if keybinds[0].Trigger != "ctrl+shift+n" {
			t.Errorf("unexpected trigger %q", keybinds[0].Trigger)
		}
		if keybinds[0].Action != "new_window" {
			t.Errorf("unexpected action %q", keybinds[0].Action)
		}
	})

	t.Run("action with parameter", func(t *testing.T) {
		keybinds := ParseKeybindList("keybind = ctrl+1=goto_tab:1\n")

		if len(keybinds) != 1 {
			t.Fatalf("expected 1 keybind, got %d", len(keybinds))
		}
		if keybinds[0].Action != "goto_tab:1" {
			t.Errorf("unexpected action %q", keybinds[0].Action)
		}
	})
}

func TestParseKeybindValue(t *testing.T) {
	t.Run("bare trigger=action", func(t *testing.T) {
		kb, ok := ParseKeybindValue("ctrl+a=select_all")
		if !ok {
			t.Fatal("expected parse to succeed")
		}
		if kb.Trigger != "ctrl+a" || kb.Action != "select_all" {
			t.Errorf("unexpected keybind %+v", kb)
		}
	})

	t.Run("no equals fails", func(t *testing.T) {
		if _, ok := ParseKeybindValue("just-text"); ok {
			t.Error("expected parse to fail without equals")
		}
	})
}

func TestParseActionList(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		actions := ParseActionList("copy\npaste\nnew_window\nclose_surface\n")

		if len(actions) != 4 {
			t.Fatalf("expected 4 actions, got %d", len(actions))
		}
		if actions[0] != "copy" || actions[3] != "close_surface" {
			t.Errorf("unexpected actions %v", actions)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := ParseActionList(""); len(got) != 0 {
			t.Errorf("expected no actions, got %v", got)
		}
	})

	t.Run("trims whitespace and skips blanks", func(t *testing.T) {
		actions := ParseActionList("  copy  \n\n  paste  \n")

		if len(actions) != 2 {
			t.Fatalf("expected 2 actions, got %d", len(actions))
		}
		if actions[0] != "copy" || actions[1] != "paste" {
			t.Errorf("unexpected actions %v", actions)
		}
	})
}

func TestParseFontList(t *testing.T) {
	t.Run("multiple families", func(t *testing.T) {
		input := "Menlo\n  Menlo Bold\n  Menlo Regular\n\nMonaco\n  Monaco\n"
		fonts := ParseFontList(input)

		if len(fonts) != 2 {
			t.Fatalf("expected 2 families, got %d", len(fonts))
		}
		if fonts[0].Name != "Menlo" || len(fonts[0].Styles) != 2 {
			t.Errorf("unexpected first family %+v", fonts[0])
		}
		if fonts[1].Name != "Monaco" {
			t.Errorf("unexpected second family %+v", fonts[1])
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := ParseFontList(""); len(got) != 0 {
			t.Errorf("expected no fonts, got %v", got)
		}
	})

	t.Run("single family", func(t *testing.T) {
		input := "JetBrains Mono\n  JetBrains Mono Regular\n  JetBrains Mono Bold\n  JetBrains Mono Italic\n"
		fonts := ParseFontList(input)

		if len(fonts) != 1 {
			t.Fatalf("expected 1 family, got %d", len(fonts))
		}
		if fonts[0].Name != "JetBrains Mono" || len(fonts[0].Styles) != 3 {
			t.Errorf("unexpected family %+v", fonts[0])
		}
	})

	t.Run("sorted case-insensitively", func(t *testing.T) {
		input := "Zapfino\n  Zapfino Regular\n\nArial\n  Arial Regular\n\nMenlo\n  Menlo Regular\n"
		fonts := ParseFontList(input)

		if len(fonts) != 3 {
			t.Fatalf("expected 3 families, got %d", len(fonts))
		}
		if fonts[0].Name != "Arial" || fonts[1].Name != "Menlo" || fonts[2].Name != "Zapfino" {
			t.Errorf("families not sorted: %v", []string{fonts[0].Name, fonts[1].Name, fonts[2].Name})
		}
	})

	t.Run("no trailing newline", func(t *testing.T) {
		fonts := ParseFontList("Menlo\n  Menlo Bold\n  Menlo Regular")

		if len(fonts) != 1 {
			t.Fatalf("expected 1 family, got %d", len(fonts))
		}
		if len(fonts[0].Styles) != 2 {
			t.Errorf("expected 2 styles, got %v", fonts[0].Styles)
		}
	})

	t.Run("family with no styles", func(t *testing.T) {
		fonts := ParseFontList("SomeFont\n\nAnotherFont\n  AnotherFont Regular\n")

		if len(fonts) != 2 {
			t.Fatalf("expected 2 families, got %d", len(fonts))
		}
		// Sorted: AnotherFont, SomeFont
		if fonts[1].Name != "SomeFont" || len(fonts[1].Styles) != 0 {
			t.Errorf("unexpected family %+v", fonts[1])
		}
	})

	t.Run("tab-indented styles", func(t *testing.T) {
		fonts := ParseFontList("Menlo\n\tMenlo Bold\n")

		if len(fonts) != 1 || len(fonts[0].Styles) != 1 {
			t.Fatalf("unexpected fonts %+v", fonts)
		}
	})
}

func TestValidate(t *testing.T) {
	t.Run("empty output means valid", func(t *testing.T) {
		client := NewClient("/usr/bin/ghostty", mockOutput("", ""))

		if got := client.Validate(); got != "Configuration is valid!" {
			t.Errorf("expected valid message, got %q", got)
		}
	})

	t.Run("passes through error report", func(t *testing.T) {
		client := NewClient("/usr/bin/ghostty", mockOutput("", "error: unknown field\n"))

		if got := client.Validate(); got != "error: unknown field\n" {
			t.Errorf("expected report, got %q", got)
		}
	})
}
