package syllabary

// entry binds one SRO syllable to its syllabic.
// Entries with scan=false are never produced by longest-match scanning.
type entry struct {
	sro      string
	syllabic rune
	scan     bool
}

func e(sro string, syllabic rune) entry {
	return entry{sro: sro, syllabic: syllabic, scan: true}
}

// baseEntries is the complete SRO to syllabics inventory.
var baseEntries = []entry{
	e("ê", 'ᐁ'), e("i", 'ᐃ'), e("î", 'ᐄ'), e("o", 'ᐅ'), e("ô", 'ᐆ'), e("a", 'ᐊ'), e("â", 'ᐋ'),

	e("wê", 'ᐍ'), e("wi", 'ᐏ'), e("wî", 'ᐑ'), e("wo", 'ᐓ'), e("wô", 'ᐕ'), e("wa", 'ᐘ'), e("wâ", 'ᐚ'), e("w", 'ᐤ'),

	e("p", 'ᑊ'), e("pê", 'ᐯ'), e("pi", 'ᐱ'), e("pî", 'ᐲ'), e("po", 'ᐳ'), e("pô", 'ᐴ'), e("pa", 'ᐸ'), e("pâ", 'ᐹ'),
	e("pwê", 'ᐻ'), e("pwi", 'ᐽ'), e("pwî", 'ᐿ'), e("pwo", 'ᑁ'), e("pwô", 'ᑃ'), e("pwa", 'ᑅ'), e("pwâ", 'ᑇ'),

	e("t", 'ᐟ'), e("tê", 'ᑌ'), e("ti", 'ᑎ'), e("tî", 'ᑏ'), e("to", 'ᑐ'), e("tô", 'ᑑ'), e("ta", 'ᑕ'), e("tâ", 'ᑖ'),
	e("twê", 'ᑘ'), e("twi", 'ᑚ'), e("twî", 'ᑜ'), e("two", 'ᑞ'), e("twô", 'ᑠ'), e("twa", 'ᑢ'), e("twâ", 'ᑤ'),

	e("k", 'ᐠ'), e("kê", 'ᑫ'), e("ki", 'ᑭ'), e("kî", 'ᑮ'), e("ko", 'ᑯ'), e("kô", 'ᑰ'), e("ka", 'ᑲ'), e("kâ", 'ᑳ'),
	e("kwê", 'ᑵ'), e("kwi", 'ᑷ'), e("kwî", 'ᑹ'), e("kwo", 'ᑻ'), e("kwô", 'ᑽ'), e("kwa", 'ᑿ'), e("kwâ", 'ᒁ'),

	e("c", 'ᐨ'), e("cê", 'ᒉ'), e("ci", 'ᒋ'), e("cî", 'ᒌ'), e("co", 'ᒍ'), e("cô", 'ᒎ'), e("ca", 'ᒐ'), e("câ", 'ᒑ'),
	e("cwê", 'ᒓ'), e("cwi", 'ᒕ'), e("cwî", 'ᒗ'), e("cwo", 'ᒙ'), e("cwô", 'ᒛ'), e("cwa", 'ᒝ'), e("cwâ", 'ᒟ'),

	e("m", 'ᒼ'), e("mê", 'ᒣ'), e("mi", 'ᒥ'), e("mî", 'ᒦ'), e("mo", 'ᒧ'), e("mô", 'ᒨ'), e("ma", 'ᒪ'), e("mâ", 'ᒫ'),
	e("mwê", 'ᒭ'), e("mwi", 'ᒯ'), e("mwî", 'ᒱ'), e("mwo", 'ᒳ'), e("mwô", 'ᒵ'), e("mwa", 'ᒷ'), e("mwâ", 'ᒹ'),

	e("n", 'ᐣ'), e("nê", 'ᓀ'), e("ni", 'ᓂ'), e("nî", 'ᓃ'), e("no", 'ᓄ'), e("nô", 'ᓅ'), e("na", 'ᓇ'), e("nâ", 'ᓈ'),
	e("nwê", 'ᓊ'), e("nwa", 'ᓌ'), e("nwâ", 'ᓎ'),

	e("s", 'ᐢ'), e("sê", 'ᓭ'), e("si", 'ᓯ'), e("sî", 'ᓰ'), e("so", 'ᓱ'), e("sô", 'ᓲ'), e("sa", 'ᓴ'), e("sâ", 'ᓵ'),
	e("swê", 'ᓷ'), e("swi", 'ᓹ'), e("swî", 'ᓻ'), e("swo", 'ᓽ'), e("swô", 'ᓿ'), e("swa", 'ᔁ'), e("swâ", 'ᔃ'),

	e("y", 'ᕀ'), e("yê", 'ᔦ'), e("yi", 'ᔨ'), e("yî", 'ᔩ'), e("yo", 'ᔪ'), e("yô", 'ᔫ'), e("ya", 'ᔭ'), e("yâ", 'ᔮ'),
	e("ywê", 'ᔰ'), e("ywi", 'ᔲ'), e("ywî", 'ᔴ'), e("ywo", 'ᔶ'), e("ywô", 'ᔸ'), e("ywa", 'ᔺ'), e("ywâ", 'ᔼ'),

	e("th", 'ᖮ'), e("thê", 'ᖧ'), e("thi", 'ᖨ'), e("thî", 'ᖩ'), e("tho", 'ᖪ'), e("thô", 'ᖫ'), e("tha", 'ᖬ'), e("thâ", 'ᖭ'),

	e("l", 'ᓬ'), e("r", 'ᕒ'), e("h", 'ᐦ'),

	// Only ever produced by merging a word-final h+k; scanning "hk" directly
	// would turn medial -ihkwê- into ᐃᕽᐍ.
	{sro: "hk", syllabic: 'ᕽ', scan: false},
}

// overrideEntries decode to SRO but are never produced when encoding.
var overrideEntries = map[rune]string{
	// Some communities write the y-final with ᐝ instead of ᕀ.
	'ᐝ': "y", // CANADIAN SYLLABICS Y-CREE W
	'ᐩ': "y", // CANADIAN SYLLABICS FINAL PLUS
	'ᑦ': "m", // CANADIAN SYLLABICS T, a look-alike of ᒼ
	FullStop:  ".",
}
