package content

// Static reference data for the Mauritanian school system. Mirrors the
// published RIMBAC catalog; seeded content beyond grade 1 arrives through the
// catalog seeding scripts.

var gradeTable = []GradeInfo{
	{Code: "1", Category: "primary", Name: "السنة الأولى ابتدائي", Subjects: []string{"العربية", "الرياضيات", "التربية الإسلامية"}},
	{Code: "2", Category: "primary", Name: "السنة الثانية ابتدائي", Subjects: []string{"العربية", "الرياضيات", "التربية الإسلامية", "الفرنسية"}},
	{Code: "3", Category: "primary", Name: "السنة الثالثة ابتدائي", Subjects: []string{"العربية", "الرياضيات", "التربية الإسلامية", "الفرنسية", "التاريخ والجغرافيا"}},
	{Code: "4", Category: "primary", Name: "السنة الرابعة ابتدائي", Subjects: []string{"العربية", "الرياضيات", "التربية الإسلامية", "الفرنسية", "التاريخ والجغرافيا", "العلوم"}},
	{Code: "5", Category: "primary", Name: "السنة الخامسة ابتدائي", Subjects: []string{"العربية", "الرياضيات", "التربية الإسلامية", "الفرنسية", "التاريخ والجغرافيا", "العلوم"}},
	{Code: "6", Category: "primary", Name: "السنة السادسة ابتدائي", Subjects: []string{"العربية", "الرياضيات", "التربية الإسلامية", "الفرنسية", "التاريخ والجغرافيا", "العلوم"}},
	{Code: "7", Category: "middle", Name: "السنة الأولى إعدادي", Subjects: middleSubjects},
	{Code: "8", Category: "middle", Name: "السنة الثانية إعدادي", Subjects: middleSubjects},
	{Code: "9", Category: "middle", Name: "السنة الثالثة إعدادي", Subjects: middleSubjects},
	{Code: "10", Category: "middle", Name: "السنة الرابعة إعدادي", Subjects: middleSubjects},
	{Code: "literature_classic", Category: "secondary", Name: "شعبة الآداب الأصلية", Subjects: []string{"العربية", "التربية الإسلامية", "التاريخ والجغرافيا", "الفلسفة", "الفرنسية"}},
	{Code: "literature_modern", Category: "secondary", Name: "شعبة الآداب العصرية", Subjects: []string{"العربية", "الفرنسية", "الإنجليزية", "التاريخ والجغرافيا", "الفلسفة", "الرياضيات"}},
	{Code: "sciences", Category: "secondary", Name: "شعبة العلوم الطبيعية", Subjects: []string{"الرياضيات", "الفيزياء", "الكيمياء", "العلوم الطبيعية", "العربية", "الفرنسية"}},
	{Code: "mathematics", Category: "secondary", Name: "شعبة الرياضيات", Subjects: []string{"الرياضيات", "الفيزياء", "الكيمياء", "العربية", "الفرنسية", "الفلسفة"}},
}

var middleSubjects = []string{"العربية", "الرياضيات", "التربية الإسلامية", "الفرنسية", "الإنجليزية", "التاريخ والجغرافيا", "العلوم الطبيعية", "الفيزياء"}

// quizBanks is keyed by "subject_grade".
var quizBanks = map[string][]Question{
	"رياضيات_1": {
		{
			Text:        "كم يساوي 2 + 3؟",
			Options:     []string{"4", "5", "6", "7"},
			Correct:     1,
			Explanation: "الجواب الصحيح هو 5 لأن 2 + 3 = 5",
		},
		{
			Text:        "ما هو الرقم الذي يأتي بعد 9؟",
			Options:     []string{"8", "10", "11", "12"},
			Correct:     1,
			Explanation: "الرقم الذي يأتي بعد 9 هو 10",
		},
	},
	"عربية_1": {
		{
			Text:        "كم عدد حروف الهجاء العربية؟",
			Options:     []string{"26", "27", "28", "29"},
			Correct:     2,
			Explanation: "عدد حروف الهجاء العربية 28 حرفاً",
		},
	},
}

// bookTable is keyed by "grade_subject".
var bookTable = map[string]Book{
	"1_رياضيات": {
		Title:       "كتاب الرياضيات - السنة الأولى ابتدائي",
		Description: "كتاب الرياضيات للسنة الأولى من التعليم الابتدائي",
		DownloadURL: "https://rimbac.com/books/math_grade1.pdf",
		Chapters:    []string{"الأرقام من 1 إلى 10", "الجمع البسيط", "الطرح البسيط", "الأشكال الهندسية"},
	},
	"1_عربية": {
		Title:       "كتاب اللغة العربية - السنة الأولى ابتدائي",
		Description: "كتاب اللغة العربية للسنة الأولى من التعليم الابتدائي",
		DownloadURL: "https://rimbac.com/books/arabic_grade1.pdf",
		Chapters:    []string{"الحروف الهجائية", "الكلمات البسيطة", "الجمل القصيرة", "القراءة الأولى"},
	},
}

var universities = []string{
	"جامعة نواكشوط العصرية",
	"جامعة شنقيط العصرية",
	"المعهد العالي للدراسات والبحوث الإسلامية",
	"المدرسة العليا للتعليم",
	"المعهد العالي للمحاسبة وإدارة المؤسسات",
	"كلية الطب",
	"المدرسة الوطنية للإدارة والصحافة والقضاء",
}

var scholarships = []string{
	"منح الحكومة الموريتانية",
	"منح الجامعة العربية",
	"منح تركيا",
	"منح المغرب",
	"منح مصر",
	"منح الصين",
	"منح فرنسا",
	"منح ألمانيا",
}

var competitions = []string{
	"مسابقة دخول الثانوية",
	"مسابقة البكالوريا",
	"مسابقات التوظيف",
	"المسابقات الثقافية",
	"مسابقات الرياضيات",
	"مسابقات العلوم",
}

var studyTips = []string{
	"💡 نصيحة: راجع دروسك يومياً لمدة 30 دقيقة على الأقل",
	"📚 نصيحة: اقرأ الكتب خارج المنهج لتوسيع معرفتك",
	"✍️ نصيحة: اكتب ملخصات للدروس المهمة",
	"🤝 نصيحة: شارك في المجموعات الدراسية مع زملائك",
	"⏰ نصيحة: نظم وقتك واعمل جدولاً للمراجعة",
	"🎯 نصيحة: ضع أهدافاً واضحة لكل مادة",
	"💪 نصيحة: لا تستسلم عند مواجهة الصعوبات",
	"🔍 نصيحة: اطرح الأسئلة عندما لا تفهم شيئاً",
}
