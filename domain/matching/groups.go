package matching

// PatronSaintGroup clusters the keywords that point an intention at one
// patron saint. Keywords are matched case-insensitively as substrings of the
// normalized intention; multi-word keywords score double, rewarding specific
// phrases over generic single words. Declaration order is the tie-break:
// earlier groups win equal scores, so the table is ordered from the more
// specific patronages to the more general ones.
type PatronSaintGroup struct {
	Keywords       []string
	PatronSaint    string
	Reason         string
	PreferredSlugs []string
}

// BuiltinGroups returns the compiled-in patron saint table. The returned
// slice shares the backing data; callers must not mutate it.
func BuiltinGroups() []PatronSaintGroup {
	return builtinGroups
}

var builtinGroups = []PatronSaintGroup{
	{
		Keywords:       []string{"anxiety", "anxious", "stress", "stressed", "worry", "worried", "worrying", "panic", "overwhelmed", "mental health", "job interview", "nervous", "can't sleep", "insomnia"},
		PatronSaint:    "St. Dymphna",
		Reason:         "St. Dymphna is the patron saint of those suffering anxiety and mental illness.",
		PreferredSlugs: []string{"st-dymphna-novena", "novena-for-peace"},
	},
	{
		Keywords:       []string{"depression", "depressed", "despair", "hopeless", "lost hope", "give up", "giving up", "impossible", "desperate", "last resort"},
		PatronSaint:    "St. Jude",
		Reason:         "St. Jude is the patron saint of hope and impossible causes.",
		PreferredSlugs: []string{"st-jude-novena", "novena-for-impossible-requests"},
	},
	{
		Keywords:       []string{"cancer", "tumor", "chemo", "chemotherapy", "terminal illness", "serious illness"},
		PatronSaint:    "St. Peregrine",
		Reason:         "St. Peregrine is the patron saint of those battling cancer and serious illness.",
		PreferredSlugs: []string{"st-peregrine-novena", "novena-for-healing"},
	},
	{
		Keywords:       []string{"sick", "sickness", "illness", "healing", "heal", "surgery", "hospital", "recover", "recovery", "health", "disease", "chronic pain"},
		PatronSaint:    "Our Lady of Lourdes",
		Reason:         "Our Lady of Lourdes is invoked for healing of body and spirit.",
		PreferredSlugs: []string{"our-lady-of-lourdes-novena", "novena-for-healing"},
	},
	{
		Keywords:       []string{"pregnant", "pregnancy", "expecting", "fertility", "infertility", "conceive", "trying to conceive", "unborn", "baby on the way", "childbirth"},
		PatronSaint:    "St. Gerard",
		Reason:         "St. Gerard is the patron saint of expectant mothers.",
		PreferredSlugs: []string{"st-gerard-novena"},
	},
	{
		Keywords:       []string{"son", "daughter", "my child", "my children", "wayward", "away from the church", "left the faith", "conversion of"},
		PatronSaint:    "St. Monica",
		Reason:         "St. Monica is the patron saint of mothers praying for their children.",
		PreferredSlugs: []string{"st-monica-novena"},
	},
	{
		Keywords:       []string{"marriage", "married", "husband", "wife", "spouse", "divorce", "separated", "broken marriage", "save my marriage"},
		PatronSaint:    "St. Rita",
		Reason:         "St. Rita is the patron saint of difficult marriages and impossible situations.",
		PreferredSlugs: []string{"st-rita-novena"},
	},
	{
		Keywords:       []string{"job", "work", "employment", "unemployed", "career", "laid off", "find a job", "new job", "workplace", "father", "fatherhood", "provide for my family"},
		PatronSaint:    "St. Joseph",
		Reason:         "St. Joseph is the patron saint of workers, fathers, and families.",
		PreferredSlugs: []string{"st-joseph-novena", "novena-for-family"},
	},
	{
		Keywords:       []string{"money", "finances", "financial", "debt", "bills", "rent", "mortgage", "afford", "poverty", "make ends meet"},
		PatronSaint:    "St. Matthew",
		Reason:         "St. Matthew is the patron saint of financial matters.",
		PreferredSlugs: []string{"st-matthew-novena", "novena-for-financial-help"},
	},
	{
		Keywords:       []string{"lost", "missing", "can't find", "find my", "misplaced"},
		PatronSaint:    "St. Anthony",
		Reason:         "St. Anthony is the patron saint of lost things and lost people.",
		PreferredSlugs: []string{"st-anthony-novena"},
	},
	{
		Keywords:       []string{"travel", "traveling", "trip", "journey", "safe travels", "flight", "moving away"},
		PatronSaint:    "St. Raphael",
		Reason:         "St. Raphael the Archangel is the patron of healing and travelers.",
		PreferredSlugs: []string{"st-raphael-novena"},
	},
	{
		Keywords:       []string{"protection", "protect", "danger", "evil", "spiritual attack", "spiritual warfare", "afraid", "fear", "nightmares", "keep us safe"},
		PatronSaint:    "St. Michael",
		Reason:         "St. Michael the Archangel defends and protects against evil.",
		PreferredSlugs: []string{"st-michael-novena"},
	},
	{
		Keywords:       []string{"exam", "exams", "test", "studying", "study", "school", "student", "students", "university", "college", "grades", "final exams"},
		PatronSaint:    "St. Thomas Aquinas",
		Reason:         "St. Thomas Aquinas is the patron saint of students and scholars.",
		PreferredSlugs: []string{"st-thomas-aquinas-novena"},
	},
	{
		Keywords:       []string{"mother", "motherhood", "my mom", "grandmother", "grandma"},
		PatronSaint:    "St. Anne",
		Reason:         "St. Anne, mother of Mary, is the patron saint of mothers and grandmothers.",
		PreferredSlugs: []string{"st-anne-novena"},
	},
	{
		Keywords:       []string{"family", "relatives", "household", "home life", "family peace", "reconciliation"},
		PatronSaint:    "The Holy Family",
		Reason:         "The Holy Family is the model and protector of family life.",
		PreferredSlugs: []string{"novena-for-family", "st-joseph-novena"},
	},
	{
		Keywords:       []string{"mary", "blessed mother", "our lady", "rosary", "virgin mary", "mother of god"},
		PatronSaint:    "Our Lady of Guadalupe",
		Reason:         "Our Lady of Guadalupe is the patroness of the Americas and of all who seek Mary's intercession.",
		PreferredSlugs: []string{"our-lady-of-guadalupe-novena", "our-lady-of-lourdes-novena"},
	},
	{
		Keywords:       []string{"peace", "peaceful", "calm", "patience", "animals", "pet", "my dog", "my cat", "creation"},
		PatronSaint:    "St. Francis of Assisi",
		Reason:         "St. Francis of Assisi is the patron saint of peace and of animals.",
		PreferredSlugs: []string{"novena-for-peace", "st-francis-novena"},
	},
	{
		Keywords:       []string{"guidance", "guide me", "decision", "decisions", "discernment", "discern", "wisdom", "direction", "what to do", "crossroads", "confirmation"},
		PatronSaint:    "The Holy Spirit",
		Reason:         "The Holy Spirit guides, comforts, and renews those who call on Him.",
		PreferredSlugs: []string{"holy-spirit-novena", "novena-for-guidance"},
	},
	{
		Keywords:       []string{"mercy", "forgiveness", "forgive", "sins", "repent", "confession", "guilt"},
		PatronSaint:    "Jesus, the Divine Mercy",
		Reason:         "The Divine Mercy devotion entrusts every need to the mercy of Jesus.",
		PreferredSlugs: []string{"divine-mercy-novena", "sacred-heart-novena"},
	},
	{
		Keywords:       []string{"love", "grateful", "gratitude", "thanksgiving", "thank you", "closer to god", "faith", "spiritual", "holiness", "prayer life"},
		PatronSaint:    "The Sacred Heart of Jesus",
		Reason:         "The Sacred Heart of Jesus is a refuge of boundless love and mercy.",
		PreferredSlugs: []string{"sacred-heart-novena", "holy-spirit-novena"},
	},
}
