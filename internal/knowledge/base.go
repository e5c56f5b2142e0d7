package knowledge

import (
	"strings"

	"sniptaste/internal/catalog"
	"sniptaste/internal/textutil"
)

// CategoryPrefix marks groups that hand control to the ordering flow
// instead of carrying a canned reply.
const CategoryPrefix = "category:"

// Build constructs the knowledge base for one catalog. The group
// order below is the classifier's documented precedence; do not
// reorder without updating the classifier tests.
func Build(cat *catalog.Catalog) *Base {
	var groups []Group

	// 1. catalog categories
	if cat != nil {
		for _, s := range cat.Sections() {
			if s.Mode == catalog.ListOnly {
				continue
			}
			groups = append(groups, Group{
				Name:     CategoryPrefix + s.ID,
				Kind:     MatchKeywords,
				Keywords: categoryKeywords(s),
				Reply:    Reply{Kind: ReplyNone},
			})
		}
	}

	// 2. mood / preference groups
	groups = append(groups, moodGroups()...)
	// 3. FAQ groups
	groups = append(groups, faqGroups()...)
	// 4. general greeting (candidate floor 0.1)
	groups = append(groups, greetingGroup())
	// 5. time-of-day greetings
	groups = append(groups, morningGroup(), nightGroup())
	// 6. scripted human-flow exact phrases (forced 0.95)
	groups = append(groups, humanFlowGroups()...)
	// 7. personality comebacks, exact word (forced 0.96)
	groups = append(groups, personalityGroups()...)
	// 8. domain Q&A
	groups = append(groups, domainGroups()...)
	// 9. emotional tone
	groups = append(groups, emotionalGroups()...)
	// 10. events (score floor 0.3)
	groups = append(groups, eventGroups()...)

	return &Base{Groups: groups}
}

func categoryKeywords(s catalog.Section) []string {
	seen := map[string]bool{s.ID: true}
	kws := []string{s.ID}
	for _, w := range strings.Fields(textutil.Normalize(s.Title)) {
		if !seen[w] {
			seen[w] = true
			kws = append(kws, w)
		}
	}
	// common darija/arabic aliases per section
	for _, alias := range sectionAliases[s.ID] {
		if !seen[alias] {
			seen[alias] = true
			kws = append(kws, alias)
		}
	}
	return kws
}

var sectionAliases = map[string][]string{
	"pizza":  {"bitza", "بيتزا"},
	"tacos":  {"takos", "طاكوس"},
	"kabab":  {"kebab", "كباب"},
	"panini": {"banini", "بانيني"},
	"plat":   {"assiette", "طبق"},
	"jus":    {"3asir", "aasir", "عصير"},
}

func moodGroups() []Group {
	return []Group{
		{
			Name:     "mood_spicy",
			Kind:     MatchKeywords,
			Keywords: []string{"har", "harra", "spicy", "piquant", "harissa", "حار", "حارة"},
			Reply: Bilingual(
				"Kanbghiw li bgha l7arr! Jarreb Tacos Mixte m3a sauce harissa 🔥",
				"لي كيبغي الحار، جرب طاكوس ميكست مع صلصة هريسة 🔥",
			),
		},
		{
			Name:     "mood_cheesy",
			Kind:     MatchKeywords,
			Keywords: []string{"fromage", "cheese", "frmaj", "formage", "فرماج", "جبن"},
			Reply: Bilingual(
				"Ila kanti m3a l'fromage, Pizza 4 Fromages hiya l'ikhtiyar 🧀",
				"إلى كنتي مع الفرماج، بيتزا 4 فروماج هي الاختيار 🧀",
			),
		},
		{
			Name:     "mood_budget",
			Kind:     MatchKeywords,
			Keywords: []string{"rkhis", "rkhissa", "promo", "pas", "cher", "budget", "flous", "رخيص", "بروموسيون"},
			Reply: Bilingual(
				"3andna Panini Thon b 15 dh w Kabab b 22 dh, taman zwin w makla bnina 👌",
				"عندنا بانيني طون ب 15 درهم وكباب ب 22 درهم، ثمن زوين وماكلة بنينة 👌",
			),
		},
		{
			Name:     "mood_hungry",
			Kind:     MatchKeywords,
			Keywords: []string{"ji3an", "ji3ana", "jiaan", "faim", "hungry", "kanmout", "جعان", "جعانة"},
			Reply: Variants(
				"Ji3an? Nta f'lblassa s7i7a! Goul liya chno bghiti, pizza? tacos? 😋",
				"Mat khafch, hna nkhdmo bzerba! Chouf l'menu w khtar li 3jbek 🍕",
			),
		},
	}
}

func faqGroups() []Group {
	return []Group{
		{
			Name:     "faq_hours",
			Kind:     MatchKeywords,
			Keywords: []string{"horaire", "wa9t", "wakt", "heure", "m7lol", "mahloul", "ouvert", "fermé", "توقيت", "محلول"},
			Reply: Bilingual(
				"7na m7lolin kol nhar mn 11h sbah 7ta l 2h dyal lil 🕐",
				"حنا محلولين كل نهار من 11 صباحا حتى 2 ديال الليل 🕐",
			),
		},
		{
			Name:     "faq_location",
			Kind:     MatchKeywords,
			Keywords: []string{"fin", "fein", "adresse", "localisation", "blassa", "kayn", "فين", "العنوان"},
			Reply: Bilingual(
				"Kaynin f'Avenue Hassan II, 7da l'pharmacie lkbira 📍",
				"كاينين في شارع الحسن الثاني، حدا الصيدلية الكبيرة 📍",
			),
		},
		{
			Name:     "faq_delivery",
			Kind:     MatchKeywords,
			Keywords: []string{"livraison", "tawsil", "twsil", "livrer", "delivery", "توصيل"},
			Reply: Bilingual(
				"Ah, kan livriw! 10 dh 7ta l 2km, 15 dh mn 2 l 5km, 20 dh ktar mn 5km 🛵",
				"آه كنوصلو! 10 دراهم حتى 2 كلم، 15 درهم من 2 ل 5 كلم، 20 درهم كتر من 5 كلم 🛵",
			),
		},
		{
			Name:     "faq_phone",
			Kind:     MatchKeywords,
			Keywords: []string{"telephone", "tel", "numero", "ra9m", "appel", "الرقم", "الهاتف"},
			Reply: Bilingual(
				"T9dr t3ayt lina 3la 06 61 23 45 67 📞",
				"تقدر تعيط لينا على 06 61 23 45 67 📞",
			),
		},
	}
}

func greetingGroup() Group {
	return Group{
		Name:     "greeting",
		Kind:     MatchKeywords,
		Keywords: []string{"salam", "slm", "salut", "bonjour", "hello", "hi", "hey", "cc", "coucou", "ahlan", "السلام", "سلام", "أهلا"},
		Floor:    0.1,
		Reply: Variants(
			"Salam! Mr7ba bik f Snip Taste 👋 Chno n9dro nwjdo lik lyoum?",
			"Ahlan w sahlan! Goul liya chno bghiti takol 😊",
			"Salam salam! L'menu wajd, goul ghir chno bghiti 🍕",
		),
	}
}

func morningGroup() Group {
	return Group{
		Name:     "greeting_morning",
		Kind:     MatchKeywords,
		Keywords: []string{"sbah", "lkhir", "sba7", "matin", "bonjour", "good", "morning", "صباح", "الخير"},
		Reply: Bilingual(
			"Sbah lkhir w nour! ☀️ Ftour wla ghda, 7na wajdin",
			"صباح الخير والنور ☀️ فطور ولا غدا، حنا واجدين",
		),
	}
}

func nightGroup() Group {
	return Group{
		Name:     "greeting_night",
		Kind:     MatchKeywords,
		Keywords: []string{"layla", "sa3ida", "tsbah", "3la", "khir", "nuit", "bonne", "night", "ليلة", "سعيدة"},
		Reply: Bilingual(
			"Layla sa3ida! 🌙 Ila ja3ti f lil, 7na m7lolin 7ta l 2h",
			"ليلة سعيدة 🌙 إلى جعتي فالليل، حنا محلولين حتى 2",
		),
	}
}

func humanFlowGroups() []Group {
	return []Group{
		{
			Name:     "human_are_you_robot",
			Kind:     MatchExactPhrase,
			Keywords: []string{"wach nta robot", "nta robot", "es tu un robot", "are you a robot"},
			Forced:   0.95,
			Reply: Variants(
				"Ana assistant dyal Snip Taste 🤖 walakin l'makla li ghadi takol 7a9i9iya 100%",
				"Robot? Momkin. Walakin kan3rf l'menu mzyan ktar mn ay wa7d 😄",
			),
		},
		{
			Name:     "human_how_are_you",
			Kind:     MatchExactPhrase,
			Keywords: []string{"labas", "ca va", "cava", "kidayr", "ki dayr", "how are you"},
			Forced:   0.95,
			Reply: Variants(
				"Labas l7amdolilah! W nta? Ja3an chwiya? 😄",
				"Bikhir, nchker Allah! Wach njhzo lik chi 7aja?",
			),
		},
		{
			Name:     "human_thanks",
			Kind:     MatchExactPhrase,
			Keywords: []string{"chokran", "choukran", "merci", "thanks", "thank you", "شكرا"},
			Forced:   0.95,
			Reply: Variants(
				"La chokr 3la wajib! 🙏 Bssa7a w ra7a",
				"Mr7ba bik dima! 😊",
			),
		},
	}
}

func personalityGroups() []Group {
	return []Group{
		{
			Name:     "personality_insult",
			Kind:     MatchExactWord,
			Keywords: []string{"hmar", "7mar", "nadi", "ghabi", "stupide"},
			Forced:   0.96,
			Reply: Variants(
				"Safi safi, ana ghir kanb8i n3awnek takol mzyan 😅",
				"Wakha nta zwin. Daba chno bghiti takol? 😄",
			),
		},
		{
			Name:     "personality_compliment",
			Kind:     MatchExactWord,
			Keywords: []string{"zwin", "zwina", "mezyan", "top", "wa3r", "wa3ra", "bravo"},
			Forced:   0.96,
			Reply: Variants(
				"Chokran! Nta li zwin 😄 Yallah, chno naklo lyoum?",
				"Merci bzaf! L'makla dyalna wa3ra ktar, jarreb w goul liya 👨‍🍳",
			),
		},
	}
}

func domainGroups() []Group {
	return []Group{
		{
			Name:     "domain_halal",
			Kind:     MatchKeywords,
			Keywords: []string{"halal", "7alal", "حلال"},
			Reply: Bilingual(
				"Kolchi 7alal 3andna, l7m mn jazzar m3rouf f l'7ouma ✅",
				"كلشي حلال عندنا، اللحم من جزار معروف في الحومة ✅",
			),
		},
		{
			Name:     "domain_vegetarian",
			Kind:     MatchKeywords,
			Keywords: []string{"vegetarien", "vegetarienne", "vegan", "bla", "l7m", "نباتي"},
			Reply: Bilingual(
				"3andna Pizza Végétarienne w Panini Thon ila ma bghitich l7m 🥗",
				"عندنا بيتزا نباتية وبانيني طون إلى ما بغيتيش اللحم 🥗",
			),
		},
	}
}

func emotionalGroups() []Group {
	return []Group{
		{
			Name:     "emotion_sad",
			Kind:     MatchKeywords,
			Keywords: []string{"7azin", "hazin", "triste", "m9alla9", "مقلق", "حزين"},
			Reply: Variants(
				"Matb9ach m9alla9, chi pizza skhouna katfarraj 🍕❤️",
				"Kayn li kaysma3 lik hna... w kayn tacos zwin ytayeb lik lkhater 😊",
			),
		},
		{
			Name:     "emotion_love",
			Kind:     MatchKeywords,
			Keywords: []string{"kanbghik", "kan7mak", "love", "je", "taime", "كنبغيك"},
			Reply: Variants(
				"W 7na kanbghiwk ktar! ❤️ B'mounasaba, pizza 4 fromages 3la 7sabna la commandit lyoum... la ghir kanmza7 😄",
				"L7ob l7a9i9i howa tacos mixte m3a supplément fromage ❤️",
			),
		},
		{
			Name:     "emotion_laughter",
			Kind:     MatchKeywords,
			Keywords: []string{"hhhh", "lol", "mdr", "😂", "d7k"},
			Laughter: true,
			Reply: Variants(
				"Hhhhh 😂 yallah, daba bjid, chno naklo?",
				"D7k zwin, walakin l'makla 7sen. Chouf l'menu 😄",
			),
		},
	}
}

func eventGroups() []Group {
	return []Group{
		{
			Name:     "event_ramadan",
			Kind:     MatchKeywords,
			Keywords: []string{"ramadan", "ftour", "s7or", "iftar", "رمضان", "فطور"},
			Floor:    0.3,
			Reply: Bilingual(
				"Ramadan karim! 🌙 F ramadan kan7addo l'ftour mn 3ndna: harira, chebakia w pizza skhouna",
				"رمضان كريم 🌙 في رمضان عندنا الفطور: حريرة وشباكية وبيتزا سخونة",
			),
		},
		{
			Name:     "event_birthday",
			Kind:     MatchKeywords,
			Keywords: []string{"anniversaire", "3id", "milad", "birthday", "عيد", "ميلاد"},
			Floor:    0.3,
			Reply: Bilingual(
				"3id milad sa3id! 🎂 Goul lina ch7al mn pizza bghiti l l7afla w n3tiwk taman zwin",
				"عيد ميلاد سعيد 🎂 قول لينا شحال من بيتزا بغيتي للحفلة ونعطيوك ثمن زوين",
			),
		},
		{
			Name:     "event_match",
			Kind:     MatchKeywords,
			Keywords: []string{"match", "kora", "foot", "botola", "مباراة", "كرة"},
			Floor:    0.3,
			Reply: Bilingual(
				"Match lyoum? 🔥⚽ Commandi 9bel ma ybda w twssel lik l'makla f waktha",
				"ماتش اليوم؟ ⚽ كوماندي قبل ما يبدا وتوصلك الماكلة في وقتها",
			),
		},
	}
}
