package deck

// 内置示例文稿：Panagora 增长策略提案。
// 这里只有字面内容，没有任何布局逻辑；布局常量全部在 layout 包。

// Builtin 返回编译期内置的参考文稿。
func Builtin() *Deck {
	d := New("Panagora Growth Strategies")
	d.Logo = "panagora_logo.png"

	d.Append(TitleSlide{
		Title:    "Accelerating Growth\nin the AI Era",
		Subtitle: "Distribution Strategy | Investor Engagement | AUM Expansion",
		Tagline:  "Panagora Asset Management  |  Strategic Discussion  |  December 2024",
	})

	d.Append(TwoColumnSlide{
		Title: "The Quantitative Investing Landscape & Panagora's Edge",
		Left: Column{
			Header: "MARKET DYNAMICS",
			Items: []string{
				"» $2T+ in systematic AUM globally—quant now mainstream",
				"» Shift from 'big data' to 'smart data' with demonstrable alpha",
				"» ESG integration table stakes, but quality data scarce",
				"» Risk Parity gaining traction: 60/40 portfolios carry 93% equity risk",
				"» AI reshaping both investment process AND distribution expectations",
			},
		},
		Right: Column{
			Header: "PANAGORA DIFFERENTIATORS",
			Items: []string{
				"» Proprietary data creation: biotech FDA models, NLP sentiment, Chinese social scraping",
				"» 'Discovery & Dollars' philosophy—human-machine synthesis",
				"» Integrated research + portfolio management teams",
				"» Risk Parity leadership: 0.87 vs 0.67 Sharpe (vs 60/40)",
				"» ESG innovation: greenwashing detection via NLP, materiality focus",
			},
		},
	})

	d.Append(SectionedSlide{
		Title: "AI-Era Distribution: Intelligent Lead Management & Engagement",
		Note:  "Created for Discussion with Tim Stanton",
		Sections: []Section{
			{
				Header: "Predictive Lead Scoring",
				Items: []string{
					"ML models on CRM data: score by conversion probability & AUM potential",
					"External signals: job changes, RFP activity, regulatory filings, conference attendance",
					"Real-time alerts on buying intent: website visits, content downloads",
					"Prioritize sales time on highest-value opportunities",
				},
			},
			{
				Header: "Hyper-Personalized Outreach",
				Items: []string{
					"AI-drafted communications tailored to portfolio gaps & interests",
					"Dynamic content: Risk Parity to consultants, ESG to pensions",
					"Adaptive nurture sequences based on engagement patterns",
					"Scale personalization without scaling headcount",
				},
			},
			{
				Header: "Intelligent Meeting Prep",
				Items: []string{
					"AI briefing docs: holdings, recent allocations, stated concerns",
					"Competitive positioning summaries before every pitch",
					"Conversation guides highlighting relevant Panagora strengths",
					"Post-meeting auto-generated follow-up recommendations",
				},
			},
		},
	})

	d.Append(SectionedSlide{
		Title: "Generating Buzz: Thought Leadership & Publicity for Modern Investors",
		Sections: []Section{
			{
				Header: "AI-Powered Content Engine",
				Items: []string{
					"Research → white papers → podcasts → social threads → video clips",
					"Real-time market commentary: AI draft + human polish = speed + quality",
					"Interactive 'Risk Parity Portfolio Builder' for prospects",
					"'Smart Data, Smart Alpha' thought leadership series",
				},
			},
			{
				Header: "Strategic Amplification",
				Items: []string{
					"LinkedIn optimization: timing, hashtags, engagement triggers",
					"Earned media: pitch 'Why 60/40 is dead' angles to financial press",
					"Podcast circuit: CIO shows with Eric's 'pilot + quant' narrative",
					"Update & amplify Institutional Investor Risk Parity research",
				},
			},
			{
				Header: "Community & Events",
				Items: []string{
					"Virtual 'Quant Masterclass' series—exclusive, invite-only",
					"AI-powered post-event follow-up within 24 hours",
					"Target ICP: diversification seekers, pension CIOs",
					"Build long-term relationships, not just transactions",
				},
			},
		},
	})

	return d
}
