package translate

const (
	GenderlessLabel    = "无性别"
	UnknownGenderRatio = "未知"
)

// genderRatios is keyed by PokeAPI's gender_rate: the chance of a female in
// eighths, or -1 for genderless species.
var genderRatios = map[int]string{
	-1: GenderlessLabel,
	0:  "雄性100%",
	1:  "雄性87.5% 雌性12.5%",
	2:  "雄性75% 雌性25%",
	4:  "雄性50% 雌性50%",
	6:  "雄性25% 雌性75%",
	7:  "雄性12.5% 雌性87.5%",
	8:  "雌性100%",
}

// GenderRatio returns the label for a gender_rate code. A nil code is treated
// as genderless, any code outside the table as unknown.
func GenderRatio(code *int) string {
	if code == nil {
		return GenderlessLabel
	}
	if label, ok := genderRatios[*code]; ok {
		return label
	}
	return UnknownGenderRatio
}
