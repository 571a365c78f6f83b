package textnorm

import "testing"

func TestConvertDigits(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		strategy WidthStrategy
		want     string
	}{
		{"keep", "１２時3分", WidthKeep, "１２時3分"},
		{"half", "１２時３分", WidthHalf, "12時3分"},
		{"full", "12時3分", WidthFull, "１２時３分"},
		{"full single widens lone digit", "3人と12人", WidthFullSingle, "３人と12人"},
		{"full single narrows wide run", "１２人", WidthFullSingle, "12人"},
		{"letters untouched", "ＡＢ１", WidthHalf, "ＡＢ1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConvertDigits(tt.in, tt.strategy); got != tt.want {
				t.Fatalf("ConvertDigits(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestConvertLetters(t *testing.T) {
	tests := []struct {
		in       string
		strategy WidthStrategy
		want     string
	}{
		{"ＮＨＫです", WidthHalf, "NHKです"},
		{"Aランク", WidthFullSingle, "Ａランク"},
		{"ＴＶ", WidthFullSingle, "TV"},
		{"abc1", WidthFull, "ａｂｃ1"},
	}
	for _, tt := range tests {
		if got := ConvertLetters(tt.in, tt.strategy); got != tt.want {
			t.Errorf("ConvertLetters(%q, %v) = %q, want %q", tt.in, tt.strategy, got, tt.want)
		}
	}
}

func TestParseWidthStrategy(t *testing.T) {
	got, err := ParseWidthStrategy("Full-Single")
	if err != nil {
		t.Fatalf("ParseWidthStrategy returned error: %v", err)
	}
	if got != WidthFullSingle {
		t.Fatalf("expected full_single, got %v", got)
	}
	if _, err := ParseWidthStrategy("double"); err == nil {
		t.Fatal("expected error for unknown strategy")
	}
}

func TestConvertHalfKatakana(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ｱｲｳ", "アイウ"},
		{"ｶﾞｷﾞ", "ガギ"},
		{"ﾊﾟﾋﾟ", "パピ"},
		{"ｳﾞｧｲｵﾘﾝ", "ヴァイオリン"},
		{"ｺｰﾋｰ", "コーヒー"},
		{"ｱﾞ", "ア"},
		{"ﾞｱ", "ア"},
		{"ひらがな", "ひらがな"},
	}
	for _, tt := range tests {
		if got := ConvertHalfKatakana(tt.in); got != tt.want {
			t.Errorf("ConvertHalfKatakana(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizePunctuation(t *testing.T) {
	got := NormalizePunctuation("(太郎):はい｡そう、ですね")
	want := "（太郎）：はい　そう　ですね"
	if got != want {
		t.Fatalf("NormalizePunctuation = %q, want %q", got, want)
	}
}

func TestStripIcons(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"♪♪　ラララ", "ラララ"},
		{"📱もしもし", "もしもし"},
		{"≫おはよう", "おはよう"},
		{"はい　　どうぞ", "はい　どうぞ"},
		{"おわり♪", "おわり"},
		{"♪ラララ♪", "ラララ"},
		{"はい📺", "はい"},
		{"♪　ラララ　♪♪", "ラララ"},
		{"そして・", "そして・"},
		{"《どうしよう≫", "《どうしよう≫"},
	}
	for _, tt := range tests {
		if got := StripIcons(tt.in); got != tt.want {
			t.Errorf("StripIcons(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStripIconSuffix(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ラララ♪♪", "ラララ"},
		{"もしもし📱", "もしもし"},
		{"そして・", "そして"},
		{"はい", "はい"},
	}
	for _, tt := range tests {
		if got := StripIconSuffix(tt.in); got != tt.want {
			t.Errorf("StripIconSuffix(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStripGaiji(t *testing.T) {
	in := "ここは[外：0123456789ABCDEF0123456789ABCDEF]です"
	if got := StripGaiji(in); got != "ここはです" {
		t.Fatalf("StripGaiji = %q", got)
	}
}

func TestAddCJKSpacing(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"NHKです", "NHK です"},
		{"これはTVです", "これは TV です"},
		{"そうです!", "そうです!"},
		{"123", "123"},
	}
	for _, tt := range tests {
		if got := AddCJKSpacing(tt.in, ""); got != tt.want {
			t.Errorf("AddCJKSpacing(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if got := AddCJKSpacing("AのB", " "); got != "A の B" {
		t.Errorf("custom space: got %q", got)
	}
}

func TestFixWesternSpacing(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Good　morning", "Good morning"},
		{"Good　朝", "Good　朝"},
		{"はい　いいえ", "はい　いいえ"},
		{"I　am　OK", "I am OK"},
	}
	for _, tt := range tests {
		if got := FixWesternSpacing(tt.in); got != tt.want {
			t.Errorf("FixWesternSpacing(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSubstitutionsApplyLiteralThenRegex(t *testing.T) {
	subs, err := NewSubstitutions(
		[]Replacement{{From: "ﾃｽﾄ", To: "テスト"}, {From: "", To: "ignored"}},
		[]Replacement{{From: `テスト(\d)`, To: "試験$1"}},
	)
	if err != nil {
		t.Fatalf("NewSubstitutions returned error: %v", err)
	}
	if subs.Len() != 2 {
		t.Fatalf("expected 2 rules, got %d", subs.Len())
	}
	if got := subs.Apply("ﾃｽﾄ1回目"); got != "試験1回目" {
		t.Fatalf("Apply = %q", got)
	}
}

func TestSubstitutionsRejectBadRegex(t *testing.T) {
	if _, err := NewSubstitutions(nil, []Replacement{{From: "(", To: ""}}); err == nil {
		t.Fatal("expected compile error")
	}
}
