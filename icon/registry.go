package icon

// Icon identifies a status symbol.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Mark
	Play
	Video
	Tag
	Sort
	Lock
	Unconfigured
)

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "✓",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Fail: {
		emoji:   "💥",
		nerd:    "",
		plain:   "✗",
		kaomoji: "(╯°□°）╯︵ ┻━┻",
		squares: "🟥",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "...",
		kaomoji: "(・_・ヾ",
		squares: "🟦",
	},
	Mark: {
		emoji:   "✅",
		nerd:    "",
		plain:   "*",
		kaomoji: "(* ^ ω ^)",
		squares: "🟧",
	},
	Play: {
		emoji:   "▶️",
		nerd:    "",
		plain:   ">",
		kaomoji: "(ﾉ◕ヮ◕)ﾉ",
		squares: "🟪",
	},
	Video: {
		emoji:   "🎞️",
		nerd:    "",
		plain:   "#",
		kaomoji: "[▓▓]",
		squares: "⬛",
	},
	Tag: {
		emoji:   "🏷️",
		nerd:    "",
		plain:   "@",
		kaomoji: "(•̀ᴗ•́)و",
		squares: "🟨",
	},
	Sort: {
		emoji:   "🔃",
		nerd:    "",
		plain:   "~",
		kaomoji: "(⇅_⇅)",
		squares: "🟫",
	},
	Lock: {
		emoji:   "🔑",
		nerd:    "",
		plain:   "$",
		kaomoji: "(¬‿¬)",
		squares: "⬜",
	},
	Unconfigured: {
		emoji:   "⚙️",
		nerd:    "",
		plain:   "!",
		kaomoji: "(・・ ) ?",
		squares: "🔲",
	},
}
