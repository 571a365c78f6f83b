package interjection

import "regexp"

// exactFillers are whole clauses that carry no words. The empty clause is a
// filler so that stray delimiters at the line edges disappear with it.
var exactFillers = map[string]struct{}{
	"":       {},
	"\u3000": {},
	"あん":     {},
	"うえぇん":   {},
	"うっわ":    {},
	"くぅ":     {},
	"くぅん":    {},
	"ぐぬ":     {},
	"ぐぬぅ":    {},
	"ぐふ":     {},
	"すぅ":     {},
	"ぜぇ":     {},
	"ぬぁ":     {},
	"ぬおおお":   {},
	"はぁ":     {},
	"ウーム":    {},
	"ふぐ":     {},
	"・":      {},
	"むふ":     {},
	"ん":      {},
	"んあ":     {},
	"んぐぐ":    {},
	"んはは":    {},
	"んん":     {},
	"んんぃ":    {},
	"ぬあ":     {},
	"クックックッ": {},
	"ゲコ":     {},
	"どわ":     {},
	"はむ":     {},
}

// singleMoraFillers are one-sound clauses. They only count as filler when
// the whole line is filler; at a line edge they are kept, since a lone "あ"
// or "は" is as often a real reply as a grunt.
var singleMoraFillers = map[string]struct{}{
	"あ":  {},
	"あぁ": {},
	"う":  {},
	"お":  {},
	"く":  {},
	"ぐ":  {},
	"ぬ":  {},
	"は":  {},
	"ひ":  {},
	"ふ":  {},
	"ぶ":  {},
	"へ":  {},
	"ほ":  {},
	"わ":  {},
	"げ":  {},
	"ひゃ": {},
	"ウ":  {},
	"ハ":  {},
	"ヒ":  {},
	"フ":  {},
	"ク":  {},
	"ン":  {},
}

// patternFillers match stretched exclamations. Order is significant and
// must not be rearranged; every pattern is anchored to the whole clause.
var patternFillers = compileAll(
	`[ウフブ][ゥウッフプンー]+`,
	`ふん(ふん)+`,
	`[アウハフワ][ァアウッハワ]+`,
	`[うぐひふ][ぇえ]+`,
	`[うぐふ][ぅうお]+`,
	`([うぐふ]|う)わ?[ぁあ]+`,
	`[あは][ぁあ][ぁあ]+`,
	`[うひ][ぃい]+`,
	`[エヘ][ッヘー]+`,
	`ヒ[ィイッヒー]+`,
	`[うふ]ふ+`,
	`[ウクグワ][ァォオグッワー]+`,
	`[うはほ][はわぁ]+`,
	`ン[ンフッ]+`,
	`ギ[イィ]+`,
	`(ふぎゃ|ぎゃあ|ひゃ|うりゃ|ふひゃ)[ぁあ]*`,
	`あ?わわ+[ぁあ]*`,
	`[ほホ](ふ[ぅゥ]*|[ぅゥ]+)`,
	`[えエ][ーっッ]+と?`,
)

func compileAll(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(`^(?:`+p+`)$`))
	}
	return out
}
