// Package translate maps PokeAPI vocabulary codes (types, growth rates,
// generations, move and item categories, egg groups) to display labels.
//
// Every lookup is a static table lookup. Unknown codes are returned
// unchanged so that a stored label is never empty when a code was present.
package translate

import "strings"

// Domain names one of the code vocabularies.
type Domain string

const (
	Type         Domain = "type"
	GrowthRate   Domain = "growth-rate"
	Generation   Domain = "generation"
	MoveCategory Domain = "move-category"
	ItemCategory Domain = "item-category"
	EggGroup     Domain = "egg-group"
)

const generationPrefix = "generation-"

var tables = map[Domain]map[string]string{
	Type: {
		"normal":   "一般",
		"fire":     "火",
		"water":    "水",
		"grass":    "草",
		"electric": "电",
		"ice":      "冰",
		"fighting": "格斗",
		"poison":   "毒",
		"ground":   "地面",
		"flying":   "飞行",
		"psychic":  "超能力",
		"bug":      "虫",
		"rock":     "岩石",
		"ghost":    "幽灵",
		"dragon":   "龙",
		"dark":     "恶",
		"steel":    "钢",
		"fairy":    "妖精",
		"stellar":  "星晶",
	},
	GrowthRate: {
		"slow":        "慢",
		"medium-slow": "中慢",
		"medium":      "中等",
		"medium-fast": "中快",
		"fast":        "快",
		"erratic":     "不定",
		"fluctuating": "波动",
		// PokeAPI names the erratic/fluctuating curves by their shape.
		"slow-then-very-fast": "不定",
		"fast-then-very-slow": "波动",
	},
	Generation: {
		"i":    "第一世代",
		"ii":   "第二世代",
		"iii":  "第三世代",
		"iv":   "第四世代",
		"v":    "第五世代",
		"vi":   "第六世代",
		"vii":  "第七世代",
		"viii": "第八世代",
		"ix":   "第九世代",
	},
	MoveCategory: {
		"physical": "物理",
		"special":  "特殊",
		"status":   "变化",
	},
	ItemCategory: {
		"stat-boosts":           "能力提升",
		"medicine":              "药品",
		"healing":               "回复",
		"status-cures":          "状态治疗",
		"pp-recovery":           "PP回复",
		"revival":               "复活",
		"vitamins":              "维生素",
		"all-machines":          "所有学习装置",
		"berries":               "树果",
		"baking-only":           "烘焙专用",
		"plot-advancement":      "剧情推进",
		"keys":                  "钥匙",
		"collectibles":          "收集品",
		"evolution":             "进化",
		"spoils":                "战利品",
		"loot":                  "战利品",
		"held-items":            "携带道具",
		"bad-held-items":        "不良携带道具",
		"choice":                "讲究道具",
		"type-enhancement":      "属性强化",
		"species-specific":      "特定宝可梦专用",
		"plates":                "石板",
		"jewels":                "宝石",
		"mega-stones":           "超级石",
		"z-crystals":            "Z纯晶",
		"memories":              "存储碟",
		"effort-training":       "努力值训练",
		"training":              "训练",
		"usable-in-battle":      "战斗中使用",
		"usable-outside-battle": "场外使用",
		"all-mail":              "所有信件",
		"standard-balls":        "精灵球",
		"special-balls":         "特殊精灵球",
		"apricorn-balls":        "球果球",
		"catching":              "捕捉",
		"flutes":                "笛子",
		"event-items":           "活动道具",
		"gameplay":              "游戏道具",
		"unused":                "未使用",
		"competition":           "比赛",
		"data-cards":            "数据卡",
	},
	EggGroup: {
		"monster":       "怪兽",
		"water1":        "水中1",
		"water2":        "水中2",
		"water3":        "水中3",
		"bug":           "虫",
		"flying":        "飞行",
		"ground":        "陆上",
		"fairy":         "妖精",
		"plant":         "植物",
		"humanshape":    "人型",
		"mineral":       "矿物",
		"indeterminate": "不定形",
		"ditto":         "百变怪",
		"dragon":        "龙",
		"no-eggs":       "未发现",
	},
}

// Translate returns the display label for code in the given domain. The
// lookup ignores case; an unknown code (or domain) is returned as given.
func Translate(domain Domain, code string) string {
	table, ok := tables[domain]
	if !ok {
		return code
	}
	if label, ok := table[strings.ToLower(code)]; ok {
		return label
	}
	return code
}

// TranslateAll translates every code of a list, keeping order.
func TranslateAll(domain Domain, codes []string) []string {
	out := make([]string, 0, len(codes))
	for _, code := range codes {
		out = append(out, Translate(domain, code))
	}
	return out
}

// TrimGeneration strips the "generation-" prefix PokeAPI puts in front of the
// roman numeral, e.g. "generation-iii" becomes "iii".
func TrimGeneration(raw string) string {
	if len(raw) >= len(generationPrefix) && strings.EqualFold(raw[:len(generationPrefix)], generationPrefix) {
		return raw[len(generationPrefix):]
	}
	return raw
}

var generationOrder = []string{"i", "ii", "iii", "iv", "v", "vi", "vii", "viii", "ix"}

// GenerationRank returns the 1-based ordinal of a raw or trimmed generation
// name, or 0 when it is not recognised.
func GenerationRank(raw string) int {
	code := strings.ToLower(TrimGeneration(raw))
	for i, g := range generationOrder {
		if g == code {
			return i + 1
		}
	}
	return 0
}

// GenerationLabel translates a raw PokeAPI generation name.
func GenerationLabel(raw string) string {
	return Translate(Generation, TrimGeneration(raw))
}
