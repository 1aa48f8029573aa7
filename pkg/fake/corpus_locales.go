package fake

// =============================================================================
// EN
// =============================================================================

var enCorpus = corpus{
	words: []string{
		"alias", "consequatur", "aut", "perferendis", "sit", "voluptatem",
		"accusantium", "doloremque", "aperiam", "eaque", "ipsa", "quae", "ab",
		"illo", "inventore", "veritatis", "et", "quasi", "architecto", "beatae",
		"vitae", "dicta", "sunt", "explicabo", "nemo", "enim", "ipsam",
		"quia", "voluptas", "aspernatur", "odit", "fugit", "sed", "consequuntur",
		"magni", "dolores", "eos", "qui", "ratione", "sequi", "nesciunt",
		"neque", "dolorem", "ipsum", "dolor", "amet", "consectetur", "adipisci",
		"velit", "non", "numquam", "eius", "modi", "tempora", "incidunt", "ut",
		"labore", "dolore", "magnam", "aliquam", "quaerat", "minima", "nostrum",
		"exercitationem", "ullam", "corporis", "nemo", "laboriosam", "nisi",
		"aliquid", "ex", "ea", "commodi", "autem", "vel", "eum", "iure",
		"reprehenderit", "in", "esse", "quam", "nihil", "molestiae", "illum",
		"fugiat", "quo", "pariatur", "at", "vero", "accusamus", "iusto", "odio",
		"dignissimos", "ducimus", "blanditiis", "praesentium", "deleniti",
		"atque", "corrupti", "quos", "quas", "molestias", "excepturi", "sint",
		"occaecati", "cupiditate", "provident", "similique", "culpa", "officia",
		"deserunt", "mollitia", "animi", "id", "est", "laborum", "dolorum",
		"fuga", "harum", "quidem", "rerum", "facilis", "expedita", "distinctio",
	},
	firstNames: []string{
		"James", "Mary", "John", "Patricia", "Robert", "Jennifer", "Michael",
		"Linda", "William", "Elizabeth", "David", "Barbara", "Richard", "Susan",
		"Joseph", "Jessica", "Thomas", "Sarah", "Charles", "Karen", "Daniel",
		"Nancy", "Matthew", "Lisa", "Anthony", "Betty", "Mark", "Margaret",
		"Alice", "Charlie", "Diana", "Edward", "Fiona",
	},
	lastNames: []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
		"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Wilson",
		"Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee",
		"Thompson", "White", "Harris", "Clark", "Lewis", "Walker", "Young",
	},
	titles:   []string{"Mr.", "Mrs.", "Ms.", "Miss", "Dr."},
	suffixes: []string{"Jr.", "Sr.", "I", "II", "III", "IV", "V", "MD", "DDS", "PhD", "DVM"},
}

// =============================================================================
// JA_JP
// =============================================================================

var jaCorpus = corpus{
	words: []string{
		"日本", "東京", "大阪", "京都", "会社", "学校", "電車", "時間", "天気",
		"季節", "春", "夏", "秋", "冬", "山", "川", "海", "空", "花", "桜",
		"友達", "家族", "仕事", "料理", "音楽", "映画", "写真", "旅行", "言葉",
		"未来", "世界", "自然", "技術", "情報", "文化", "歴史", "社会", "経済",
		"駅", "道", "町", "村", "森", "雨", "雪", "風", "光", "夢", "心", "手紙",
		"図書館", "公園", "病院", "銀行", "新聞", "雑誌", "野菜", "果物", "お茶",
	},
	firstNames: []string{
		"翔太", "蓮", "大翔", "悠真", "陽翔", "湊", "樹", "結衣", "陽菜", "さくら",
		"美咲", "葵", "凛", "結菜", "花子", "太郎", "健太", "愛", "優子", "直樹",
	},
	lastNames: []string{
		"佐藤", "鈴木", "高橋", "田中", "伊藤", "渡辺", "山本", "中村", "小林",
		"加藤", "吉田", "山田", "佐々木", "山口", "松本", "井上", "木村", "林",
	},
	titles:      []string{"様", "殿", "先生", "博士"},
	suffixes:    []string{"さん", "様", "君"},
	familyFirst: true,
	period:      "。",
}

// =============================================================================
// AR_SA
// =============================================================================

var arCorpus = corpus{
	words: []string{
		"كتاب", "مدرسة", "بيت", "شمس", "قمر", "بحر", "سماء", "أرض", "ماء",
		"نور", "علم", "عمل", "وقت", "يوم", "ليل", "مدينة", "طريق", "صديق",
		"عائلة", "قلب", "حياة", "عالم", "لغة", "تاريخ", "مستقبل", "سلام",
		"جبل", "نهر", "شجرة", "زهرة", "باب", "نافذة", "قلم", "ورقة",
	},
	firstNames: []string{
		"محمد", "أحمد", "عبدالله", "خالد", "فهد", "سعد", "عمر", "علي", "يوسف",
		"فاطمة", "نورة", "سارة", "مريم", "هند", "ريم", "لطيفة", "عائشة",
	},
	lastNames: []string{
		"العتيبي", "القحطاني", "الغامدي", "الزهراني", "الشهري", "الدوسري",
		"الحربي", "المطيري", "العنزي", "الشمري", "السبيعي", "الرشيدي",
	},
	titles:   []string{"السيد", "السيدة", "الدكتور", "الأستاذ"},
	suffixes: []string{"الأول", "الثاني", "الابن"},
}

// =============================================================================
// FR_FR
// =============================================================================

var frCorpus = corpus{
	words: []string{
		"maison", "soleil", "lune", "mer", "ciel", "terre", "eau", "lumière",
		"temps", "jour", "nuit", "ville", "chemin", "ami", "famille", "coeur",
		"vie", "monde", "langue", "histoire", "avenir", "paix", "montagne",
		"rivière", "arbre", "fleur", "porte", "fenêtre", "livre", "école",
		"travail", "voyage", "musique", "jardin", "pain", "fromage", "vin",
	},
	firstNames: []string{
		"Gabriel", "Louis", "Raphaël", "Jules", "Adam", "Lucas", "Léo", "Hugo",
		"Arthur", "Emma", "Jade", "Louise", "Alice", "Chloé", "Lina", "Léa",
		"Camille", "Manon", "Inès", "Sarah",
	},
	lastNames: []string{
		"Martin", "Bernard", "Thomas", "Petit", "Robert", "Richard", "Durand",
		"Dubois", "Moreau", "Laurent", "Simon", "Michel", "Lefebvre", "Leroy",
		"Roux", "David", "Bertrand", "Morel", "Fournier", "Girard",
	},
	titles:   []string{"M.", "Mme", "Mlle", "Dr", "Me"},
	suffixes: []string{"fils", "père"},
}

// =============================================================================
// PT_BR
// =============================================================================

var ptCorpus = corpus{
	words: []string{
		"casa", "sol", "lua", "mar", "céu", "terra", "água", "luz", "tempo",
		"dia", "noite", "cidade", "caminho", "amigo", "família", "coração",
		"vida", "mundo", "língua", "história", "futuro", "paz", "montanha",
		"rio", "árvore", "flor", "porta", "janela", "livro", "escola",
		"trabalho", "viagem", "música", "praia", "saudade", "festa", "café",
	},
	firstNames: []string{
		"Miguel", "Arthur", "Heitor", "Bernardo", "Davi", "Théo", "Lorenzo",
		"Gabriel", "Pedro", "Helena", "Alice", "Laura", "Maria", "Valentina",
		"Sophia", "Isabella", "Manuela", "Júlia", "Heloísa", "Luiza",
	},
	lastNames: []string{
		"Silva", "Santos", "Oliveira", "Souza", "Rodrigues", "Ferreira",
		"Alves", "Pereira", "Lima", "Gomes", "Costa", "Ribeiro", "Martins",
		"Carvalho", "Almeida", "Lopes", "Soares", "Fernandes", "Vieira",
	},
	titles:   []string{"Sr.", "Sra.", "Srta.", "Dr.", "Dra."},
	suffixes: []string{"Filho", "Neto", "Júnior", "Sobrinho"},
}

// =============================================================================
// ZH_CN
// =============================================================================

var zhCNCorpus = corpus{
	words: []string{
		"中国", "北京", "上海", "学校", "公司", "时间", "天气", "春天", "夏天",
		"秋天", "冬天", "山", "河", "海", "天空", "花", "朋友", "家庭", "工作",
		"音乐", "电影", "照片", "旅行", "语言", "未来", "世界", "自然", "技术",
		"信息", "文化", "历史", "社会", "经济", "城市", "道路", "森林", "阳光",
		"梦想", "图书馆", "公园", "医院", "银行", "报纸", "水果", "茶",
	},
	firstNames: []string{
		"伟", "芳", "娜", "秀英", "敏", "静", "丽", "强", "磊", "军", "洋",
		"勇", "艳", "杰", "娟", "涛", "明", "超", "秀兰", "霞",
	},
	lastNames: []string{
		"王", "李", "张", "刘", "陈", "杨", "黄", "赵", "吴", "周", "徐",
		"孙", "马", "朱", "胡", "郭", "何", "高", "林", "罗",
	},
	titles:      []string{"先生", "女士", "博士", "教授"},
	suffixes:    []string{"先生", "女士"},
	familyFirst: true,
	period:      "。",
}

// =============================================================================
// ZH_TW
// =============================================================================

var zhTWCorpus = corpus{
	words: []string{
		"臺灣", "臺北", "高雄", "學校", "公司", "時間", "天氣", "春天", "夏天",
		"秋天", "冬天", "山", "河", "海", "天空", "花", "朋友", "家庭", "工作",
		"音樂", "電影", "照片", "旅行", "語言", "未來", "世界", "自然", "技術",
		"資訊", "文化", "歷史", "社會", "經濟", "城市", "道路", "森林", "陽光",
		"夢想", "圖書館", "公園", "醫院", "銀行", "報紙", "水果", "茶",
	},
	firstNames: []string{
		"家豪", "志明", "俊傑", "建宏", "冠宇", "淑芬", "雅婷", "怡君", "美玲",
		"佳穎", "宜蓁", "承恩", "宥廷", "品妍", "詠晴",
	},
	lastNames: []string{
		"陳", "林", "黃", "張", "李", "王", "吳", "劉", "蔡", "楊", "許",
		"鄭", "謝", "郭", "洪", "曾", "邱", "廖",
	},
	titles:      []string{"先生", "女士", "博士", "教授"},
	suffixes:    []string{"先生", "女士"},
	familyFirst: true,
	period:      "。",
}
