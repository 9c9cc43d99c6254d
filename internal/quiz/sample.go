package quiz

// SampleQuiz returns the built-in demo quiz about the Dragon Boat
// Festival. It is shown before the first real generation so a new user
// sees a working quiz immediately; it is replaced wholesale by the
// first generated quiz and never persisted.
func SampleQuiz() *Quiz {
	idx := func(i int) *int { return &i }

	return &Quiz{
		Passage: "端午节是中国一个非常重要的传统节日。它在农历五月初五。这个节日有很多有趣的故事和习俗。\n\n" +
			"端午节最重要的活动之一是赛龙舟。人们划着长长的龙舟，在水上比赛，场面非常热闹。龙舟的形状像龙，很漂亮。\n\n" +
			"另外，吃粽子也是端午节的传统。粽子是用糯米和不同的馅料做成的，外面包着竹叶。馅料可以是肉、豆沙或者红枣，味道非常好。\n\n" +
			"人们过端午节，是为了纪念一位名叫屈原的诗人。屈原是一位爱国的诗人，他在两千多年前去世了。为了不让鱼吃他的身体，就把粽子扔到河里，并划船去寻找他。\n\n" +
			"现在，端午节不仅是中国人庆祝的节日，在一些亚洲国家也有庆祝活动。它提醒我们记住历史，也让我们有机会和家人朋友一起享受美食和乐趣。",
		Questions: []Question{
			{
				Type:         TypeMultipleChoice,
				QuestionText: "根据文章，端午节是在哪一天？",
				Options: []string{
					"农历一月初一",
					"农历五月初五",
					"农历八月十五",
					"阳历十二月二十五日",
				},
				CorrectAnswerIndex: idx(1),
				Explanation:        "文章第一段明确指出：“它在农历五月初五。”",
			},
			{
				Type:         TypeMultipleChoice,
				QuestionText: "文章中提到的两个主要的端午节传统习俗是什么？",
				Options: []string{
					"吃月饼和赏月",
					"贴春联和放鞭炮",
					"赛龙舟和吃粽子",
					"扫墓和踏青",
				},
				CorrectAnswerIndex: idx(2),
				Explanation:        "文章第二段和第三段分别介绍了“赛龙舟”和“吃粽子”是端午节的重要活动和传统。",
			},
			{
				Type:              TypeShortAnswer,
				QuestionText:      "人们过端午节是为了纪念哪位历史人物？",
				CorrectAnswerText: "是为了纪念爱国诗人屈原。",
				Explanation:       "文章第四段提到：“人们过端午节，是为了纪念一位名叫屈原的诗人。”",
			},
		},
	}
}
