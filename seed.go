package cms

import (
	"context"
	"fmt"

	"github.com/sproux/cms/auth"
	"github.com/sproux/cms/blocks"
	"github.com/sproux/cms/domain"
	"github.com/sproux/cms/helpdesk"
	"github.com/sproux/cms/media"
	"github.com/sproux/cms/pages"
	"github.com/sproux/cms/posts"
)

// SeedSiteContent loads the SprouX site: the four marketing pages with their
// block sets, the help center taxonomy, the blog, the media library, and the
// admin accounts. Seeding an already populated module returns a duplicate
// error from whichever collection collides first.
func (m *Module) SeedSiteContent(ctx context.Context) error {
	if err := m.seedUsers(ctx); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if err := m.seedPages(ctx); err != nil {
		return fmt.Errorf("seed pages: %w", err)
	}
	if err := m.seedHelpDesk(ctx); err != nil {
		return fmt.Errorf("seed help desk: %w", err)
	}
	if err := m.seedBlog(ctx); err != nil {
		return fmt.Errorf("seed blog: %w", err)
	}
	if err := m.seedMedia(ctx); err != nil {
		return fmt.Errorf("seed media: %w", err)
	}
	return nil
}

func (m *Module) seedUsers(ctx context.Context) error {
	users := []auth.User{
		{
			ID:       "admin-01",
			Email:    "admin@sproux.com",
			Name:     "SprouX Admin",
			Role:     auth.RoleAdministrator,
			Password: "admin123",
		},
		{
			ID:       "editor-01",
			Email:    "editor@sproux.com",
			Name:     "Sarah Editor",
			Role:     auth.RoleEditor,
			Password: "editorpassword",
		},
	}
	for _, user := range users {
		if _, err := m.auth.AddUser(ctx, user); err != nil {
			return err
		}
	}
	return nil
}

func (m *Module) seedPages(ctx context.Context) error {
	for _, req := range seedPageRequests() {
		if _, err := m.pages.Create(ctx, req); err != nil {
			return err
		}
	}
	return nil
}

func seedPageRequests() []pages.CreatePageRequest {
	return []pages.CreatePageRequest{
		{
			ID:     "p-home",
			Title:  "Home Page",
			Slug:   "/",
			Status: domain.StatusPublished,
			Blocks: homePageBlocks(),
		},
		{
			ID:     "p-pricing",
			Title:  "Pricing Page",
			Slug:   "/pricing",
			Status: domain.StatusPublished,
			Blocks: pricingPageBlocks(),
		},
		{
			ID:     "p-how-it-works",
			Title:  "How It Works",
			Slug:   "/how-it-works",
			Status: domain.StatusPublished,
			Blocks: howItWorksPageBlocks(),
		},
		{
			ID:     "p-help-desk",
			Title:  "Help Center",
			Slug:   "/help-desk",
			Status: domain.StatusPublished,
			Blocks: helpDeskPageBlocks(),
		},
	}
}

func textBlock(id, label, value, group string) blocks.Block {
	return blocks.Block{
		ID:       id,
		Type:     blocks.TypeText,
		Value:    value,
		Label:    label,
		Metadata: blocks.Metadata{Group: group, Editable: true},
	}
}

func imageBlock(id, label, url, group, alt string) blocks.Block {
	return blocks.Block{
		ID:       id,
		Type:     blocks.TypeImage,
		Value:    url,
		Label:    label,
		Metadata: blocks.Metadata{Group: group, Editable: true, Alt: alt},
	}
}

func iconTextBlock(id, label, value, group string) blocks.Block {
	return blocks.Block{
		ID:       id,
		Type:     blocks.TypeText,
		Value:    value,
		Label:    label,
		Metadata: blocks.Metadata{Group: group, Editable: true, Kind: "icon"},
	}
}

func homePageBlocks() []blocks.Block {
	return []blocks.Block{
		// The home hero is part of the site chrome and stays out of the
		// editable block set.
		textBlock("problem-title", "Problem: Title", "Where Most Creators Get Stuck", "Problem Section"),
		textBlock("problem-desc", "Problem: Description", "You did everything right—built an audience, earned trust, showed up every day. But your business still isn’t truly yours.", "Problem Section"),
		textBlock("problem-point-1", "Problem: Pain Point 1", "70% of creators still depend on brand deals for survival.", "Problem Section"),
		textBlock("problem-point-2", "Problem: Pain Point 2", "Platforms own your audience. One algorithm change can erase your income.", "Problem Section"),
		textBlock("problem-point-3", "Problem: Pain Point 3", "You have real expertise—but turning it into recurring income still feels risky.", "Problem Section"),
		textBlock("problem-old-label", "Card: Old Model Heading", "Old Model", "Problem Cards"),
		textBlock("problem-old-micro", "Card: Old Model Micro", "Slave to algorithms. Unpredictable revenue.", "Problem Cards"),
		textBlock("problem-new-label", "Card: SprouX Model Heading", "SprouX Model", "Problem Cards"),
		textBlock("problem-new-micro", "Card: SprouX Model Micro", "Asset ownership. Automated launch. Scale.", "Problem Cards"),
		imageBlock("problem-img-1", "Old Model Image", "https://picsum.photos/400/400?grayscale", "Problem Cards", "Frustrated Creator"),
		imageBlock("problem-img-2", "SprouX Model Image", "https://picsum.photos/401/401", "Problem Cards", "Empowered Entrepreneur"),

		textBlock("solution-title", "Solution: Title", "Your Vision. Validated. Launched.", "Solution Section"),
		textBlock("solution-subtext", "Solution: Subtext", "SprouX is the bridge from Creator to Entrepreneur.<br />Stop guessing. Start launching with confidence.", "Solution Section"),
		textBlock("solution-ai-synced-label", "Badge: AI Synced Text", "", "Solution Section"),
		textBlock("phase-1-title", "Phase 1: Title", "Idea<br />Refinement", "Solution Phases"),
		textBlock("phase-1-desc", "Phase 1: Description", "Turn scattered thoughts and expertise into clear product ideas. Our AI aligns what you know best with market signals—so you start with ideas worth validating.", "Solution Phases"),
		textBlock("phase-2-title", "Phase 2: Title", "Concept Validation", "Solution Phases"),
		textBlock("phase-2-desc", "Phase 2: Description", "Automatically generate test landing pages and surveys to validate demand with your audience. See what resonates, what converts, and what they’re actually willing to pay for.", "Solution Phases"),
		textBlock("phase-3-title", "Phase 3: Title", "Re-sell Campaign", "Solution Phases"),
		textBlock("phase-3-desc", "Phase 3: Description", "Turn validated concepts into a pre-sell campaign. Launch with landing pages, pricing, funding goals, and messaging in place, so you go live & start collecting pre-orders.", "Solution Phases"),
		textBlock("phase-4-title", "Phase 4: Title", "Delivery & Fund Release", "Solution Phases"),
		textBlock("phase-4-desc", "Phase 4: Description", "Deliver with built-in escrow and verification that protects both sides. You receive working capital upfront, then funds unlock automatically as backers confirm delivery.", "Solution Phases"),

		textBlock("benefit-title", "Benefits: Title", "Why Choose SprouX?", "Benefits Section"),
		textBlock("benefit-desc", "Benefits: Subtitle", "The ultimate toolkit for the modern knowledge entrepreneur.", "Benefits Section"),
		textBlock("benefit-1-title", "Benefit 1: Title", "Comprehensive launch system", "Benefit Grid"),
		textBlock("benefit-1-desc", "Benefit 1: Desc", "Covers the full journey from idea refinement and validation to pre-sell and delivery.", "Benefit Grid"),
		textBlock("benefit-2-title", "Benefit 2: Title", "AI-Powered Guidance", "Benefit Grid"),
		textBlock("benefit-2-desc", "Benefit 2: Desc", "AI assists at every stage, giving creators clarity, insights, and actionable recommendations.", "Benefit Grid"),
		textBlock("benefit-3-title", "Benefit 3: Title", "Risk-free for creators and backers", "Benefit Grid"),
		textBlock("benefit-3-desc", "Benefit 3: Desc", "Pre-orders secure early revenue while escrow and verification protect backers.", "Benefit Grid"),
		textBlock("benefit-4-title", "Benefit 4: Title", "From idea to campaign-ready in days", "Benefit Grid"),
		textBlock("benefit-4-desc", "Benefit 4: Desc", "A structured flow replaces scattered tools, helping creators go from idea to live campaign fast.", "Benefit Grid"),

		textBlock("creators-title", "Creators: Title", "Join the New Generation of Knowledge Entrepreneurs", "Creators Section"),
		textBlock("creators-subtext", "Creators: Subtext", "Meet our Co-Creators—visionaries partnering with SprouX to shape the platform and the way creators turn their expertise into impact.", "Creators Section"),
		textBlock("creators-cta", "Creators: CTA Button", "Be Our Co-Creator", "Creators Section"),
		textBlock("creators-view-profile-btn", "Creators: Profile Button Label", "View Profile", "Creators Section"),
		textBlock("creators-footer-msg", "Creators: Footer Message", `Join us in reshaping the future of creator-led knowledge products—and unlock privileges worth up to <span class="text-primary font-bold">$1,000</span> per creator.`, "Creators Section"),
		textBlock("creator-1-name", "Creator 1: Name", "Alex Rivera", "Creator 1"),
		textBlock("creator-1-role", "Creator 1: Role", "AI Automation Expert", "Creator 1"),
		textBlock("creator-1-quote", "Creator 1: Quote", "Partnering with SprouX to streamline how technical experts package workflow.", "Creator 1"),
		imageBlock("creator-1-img", "Creator 1: Image", "https://picsum.photos/400/400?random=1", "Creator 1", ""),
		textBlock("creator-2-name", "Creator 2: Name", "Sarah Chen", "Creator 2"),
		textBlock("creator-2-role", "Creator 2: Role", "Finance Creator", "Creator 2"),
		textBlock("creator-2-quote", "Creator 2: Quote", "Testing data-driven idea validation to ensure every launch is a win.", "Creator 2"),
		imageBlock("creator-2-img", "Creator 2: Image", "https://picsum.photos/400/400?random=2", "Creator 2", ""),

		textBlock("cta-badge", "CTA: Badge Text", "Limited Beta Now Open", "Final CTA"),
		textBlock("cta-title", "CTA: Headline", "Ready to Launch<br />Your Big Idea?", "Final CTA"),
		textBlock("cta-desc", "CTA: Description", "Build your vision and monetize your knowledge today.", "Final CTA"),
		textBlock("cta-btn", "CTA: Button Text", "Launch Now", "Final CTA"),
		textBlock("cta-perk-1", "CTA: Perk 1", "Risk-Free Infrastructure", "Final CTA"),
		textBlock("cta-perk-2", "CTA: Perk 2", "No Technical Setup", "Final CTA"),
		textBlock("cta-perk-3", "CTA: Perk 3", "AI Launch Support", "Final CTA"),
	}
}

func pricingPageBlocks() []blocks.Block {
	registry := blocks.NewRegistry()

	plan1 := registry.Serialize(blocks.PricingPlanValue{Plan: blocks.PricingPlan{
		Name:        "Pay Per Launch",
		Price:       "$TBD",
		Description: "Perfect for one-off projects or creators testing the waters.",
		Features: []string{
			"Single Project Lifecycle",
			"Concept Validation Suite",
			"Pre-selling Event Tools",
			"Automated Fund Release System",
			"Pay only when you launch",
		},
		CTAText:    "Select Per Launch",
		CTAVariant: blocks.CTAVariantNeutral,
		Icon:       "Rocket",
	}})
	plan2 := registry.Serialize(blocks.PricingPlanValue{Plan: blocks.PricingPlan{
		Name:        "Subscription",
		Price:       "$TBD",
		Description: "For consistent growth and ongoing AI-powered iteration.",
		Features: []string{
			"Unlimited Idea Refinements",
			"Ongoing Market Sentiment Analysis",
			"Full CRM & Audience Management",
			"Priority 24/7 AI Support",
			"Lower Commission per Sale",
		},
		CTAText:    "Get Started",
		CTAVariant: blocks.CTAVariantPrimary,
		Icon:       "Zap",
		Highlight:  "Most Sustainable",
	}})
	plan3 := registry.Serialize(blocks.PricingPlanValue{Plan: blocks.PricingPlan{
		Name:        "Credit Packs",
		Price:       "$TBD",
		Description: "Best for scaling specific AI tasks without monthly commitment.",
		Features: []string{
			"Credits never expire",
			"Advanced AI Analysis access",
			"Custom Market Reports",
			"Top-up whenever needed",
			"Shared across multiple projects",
		},
		CTAText:    "Buy Credits",
		CTAVariant: blocks.CTAVariantSecondary,
		Icon:       "Coins",
	}})
	faq1 := registry.Serialize(blocks.FAQItemValue{Item: blocks.FAQItem{
		Question: "Can I switch between plans?",
		Answer:   "Yes! You can transition from a Per-Launch model to a Subscription as your project frequency increases.",
	}})
	faq2 := registry.Serialize(blocks.FAQItemValue{Item: blocks.FAQItem{
		Question: "How do Credits work?",
		Answer:   "Credits are used for intensive AI features like deep-market analysis and automated content generation.",
	}})

	return []blocks.Block{
		textBlock("pricing-hero-title", "Hero: Headline", "Choose Your Plan", "Hero Section"),
		textBlock("pricing-hero-desc", "Hero: Subheadline", "Flexible options to suit your workflow. Pay as you go, subscribe, or buy credits for AI features.", "Hero Section"),
		{
			ID:       "plan-1",
			Type:     blocks.TypePricingPlan,
			Value:    plan1,
			Label:    "Plan Card 1",
			Metadata: blocks.Metadata{Group: "Pricing Plans", Editable: true},
		},
		{
			ID:       "plan-2",
			Type:     blocks.TypePricingPlan,
			Value:    plan2,
			Label:    "Plan Card 2",
			Metadata: blocks.Metadata{Group: "Pricing Plans", Editable: true, Highlighted: true},
		},
		{
			ID:       "plan-3",
			Type:     blocks.TypePricingPlan,
			Value:    plan3,
			Label:    "Plan Card 3",
			Metadata: blocks.Metadata{Group: "Pricing Plans", Editable: true},
		},
		{
			ID:       "faq-1",
			Type:     blocks.TypeFAQItem,
			Value:    faq1,
			Label:    "FAQ Block 1",
			Metadata: blocks.Metadata{Group: "FAQs", Editable: true},
		},
		{
			ID:       "faq-2",
			Type:     blocks.TypeFAQItem,
			Value:    faq2,
			Label:    "FAQ Block 2",
			Metadata: blocks.Metadata{Group: "FAQs", Editable: true},
		},
	}
}

func howItWorksPageBlocks() []blocks.Block {
	return []blocks.Block{
		textBlock("hiw-hero-title", "Hero: Headline", "The 4-Phase Knowledge Launch System", "Hero Section"),
		textBlock("hiw-hero-desc", "Hero: Subheadline", "From idea to pre-orders in days. Use our AI-driven framework to refine your expertise and secure your future.", "Hero Section"),
		textBlock("hiw-hero-cta", "Hero: CTA Button", "Get Started", "Hero Section"),

		textBlock("phase1-tab-label", "P1: Tab Label", "Idea Refinement", "Phase 1 Detail"),
		textBlock("phase1-full-title", "P1: Full Detailed Headline", "Idea Refinement: Refine Your Idea in Minutes", "Phase 1 Detail"),
		textBlock("phase1-subheadline", "P1: Subheadline", "Turn a vague concept into a clear, market-ready idea. Our AI-guided framework gives you structure, clarity, and confidence to move forward.", "Phase 1 Detail"),
		textBlock("phase1-step1", "P1: Step 1", "Start the AI Conversation – Answer targeted questions about your content type, audience, and the problem you’re solving.", "Phase 1 Detail"),
		textBlock("phase1-step2", "P1: Step 2", "Clarify Your Outcome – Define the result your audience will achieve and the format of your offering.", "Phase 1 Detail"),
		textBlock("phase1-step3", "P1: Step 3", "Set Scope & Pricing – Determine the course duration, modules, and preliminary pricing hypothesis.", "Phase 1 Detail"),
		textBlock("phase1-step4", "P1: Step 4", "Generate Your Concept Summary – Get a structured overview including title, positioning, outline, and delivery timeline.", "Phase 1 Detail"),

		textBlock("phase2-tab-label", "P2: Tab Label", "Concept Validation", "Phase 2 Detail"),
		textBlock("phase2-full-title", "P2: Full Detailed Headline", "Concept Validation: Test Your Concept with Real Backers", "Phase 2 Detail"),
		textBlock("phase2-subheadline", "P2: Subheadline", "Use simple, data-driven tactics to see if your idea resonates, measures interest, and identifies potential buyers.", "Phase 2 Detail"),
		textBlock("phase2-step1", "P2: Step 1", "Select Platforms to Test: Choose 1–3 of your existing audiences to run validation tactics.", "Phase 2 Detail"),
		textBlock("phase2-step2", "P2: Step 2", "Run Validation Tactics: Deploy lightweight methods like landing pages, polls, surveys, and teaser videos.", "Phase 2 Detail"),
		textBlock("phase2-step3", "P2: Step 3", "Track Results in Real-Time: See reach, engagement, and interest aggregated in a single dashboard.", "Phase 2 Detail"),
		textBlock("phase2-step4", "P2: Step 4", "Capture Top Questions: Automatically collect audience questions to pre-populate your FAQ.", "Phase 2 Detail"),

		textBlock("phase3-tab-label", "P3: Tab Label", "Pre-selling Campaign", "Phase 3 Detail"),
		textBlock("phase3-full-title", "P3: Full Detailed Headline", "Pre-selling Campaign: Launch Your Validated Concept", "Phase 3 Detail"),
		textBlock("phase3-subheadline", "P3: Subheadline", "Turn validated concepts into a pre-sell campaign. Launch with landing pages, pricing, funding goals, and messaging in place, so you go live & start collecting pre-orders.", "Phase 3 Detail"),
		textBlock("phase3-step1", "P3: Step 1", "Pre-Populate Your Campaign: Phase A concept and Phase B validation data automatically fill details.", "Phase 3 Detail"),
		textBlock("phase3-step2", "P3: Step 2", "Customize & Refine: Adjust media, description, modules, pricing, and delivery details.", "Phase 3 Detail"),
		textBlock("phase3-step3", "P3: Step 3", "Set Funding Goal: Suggested target based on validation results gives you confidence.", "Phase 3 Detail"),
		textBlock("phase3-step4", "P3: Step 4", "Launch & Track: Go live and monitor pledges, conversions, and backer questions in real-time.", "Phase 3 Detail"),

		textBlock("phase4-tab-label", "P4: Tab Label", "Delivery & Fund Release", "Phase 4 Detail"),
		textBlock("phase4-full-title", "P4: Full Detailed Headline", "Delivery & Fund Release: Get Paid, Build Trust", "Phase 4 Detail"),
		textBlock("phase4-subheadline", "P4: Subheadline", "Ensure creators deliver what they promised and backers receive it, using automated verification and staged fund release.", "Phase 4 Detail"),
		textBlock("phase4-step1", "P4: Step 1", "Submit Delivery Proof: Creators provide access links and screenshots showing content is live.", "Phase 4 Detail"),
		textBlock("phase4-step2", "P4: Step 2", "Backer Verification: A random sample of backers confirms receipt via one-click email.", "Phase 4 Detail"),
		textBlock("phase4-step3", "P4: Step 3", "Staged Fund Release: Funds held in escrow are released in 3 stages.", "Phase 4 Detail"),
		textBlock("phase4-step4", "P4: Step 4", "Community Updates & Comments: Creators share progress updates and interact with backers.", "Phase 4 Detail"),

		textBlock("hiw-benefit-title", "Why It Works: Title", "Why This Process Works?", "Why It Works"),
		iconTextBlock("hiw-benefit-1-icon", "Benefit 1: Icon", "Users", "Why It Works"),
		textBlock("hiw-benefit-1-title", "Benefit 1: Title", "Structured Path", "Why It Works"),
		textBlock("hiw-benefit-1-desc", "Benefit 1: Description", "Clear, step-by-step flow from idea to delivery keeps creators focused and efficient.", "Why It Works"),
		iconTextBlock("hiw-benefit-2-icon", "Benefit 2: Icon", "ShieldAlert", "Why It Works"),
		textBlock("hiw-benefit-2-title", "Benefit 2: Title", "Risk Minimization", "Why It Works"),
		textBlock("hiw-benefit-2-desc", "Benefit 2: Description", "Validate demand before building, ensuring time and effort are invested wisely.", "Why It Works"),
		iconTextBlock("hiw-benefit-3-icon", "Benefit 3: Icon", "Zap", "Why It Works"),
		textBlock("hiw-benefit-3-title", "Benefit 3: Title", "Faster Launch", "Why It Works"),
		textBlock("hiw-benefit-3-desc", "Benefit 3: Description", "Pre-populated campaigns and guided steps dramatically reduce setup time.", "Why It Works"),
		iconTextBlock("hiw-benefit-4-icon", "Benefit 4: Icon", "BarChart4", "Why It Works"),
		textBlock("hiw-benefit-4-title", "Benefit 4: Title", "Actionable Insights", "Why It Works"),
		textBlock("hiw-benefit-4-desc", "Benefit 4: Description", "Real-time analytics and verification metrics help creators adjust strategy quickly.", "Why It Works"),
		iconTextBlock("hiw-benefit-5-icon", "Benefit 5: Icon", "TrendingUp", "Why It Works"),
		textBlock("hiw-benefit-5-title", "Benefit 5: Title", "Revenue Confidence", "Why It Works"),
		textBlock("hiw-benefit-5-desc", "Benefit 5: Description", "Pre-orders and funding guidance turn interest into real commitments early.", "Why It Works"),
		iconTextBlock("hiw-benefit-6-icon", "Benefit 6: Icon", "Lock", "Why It Works"),
		textBlock("hiw-benefit-6-title", "Benefit 6: Title", "Trust & Accountability", "Why It Works"),
		textBlock("hiw-benefit-6-desc", "Benefit 6: Description", "Escrow and verification ensure backers get what they paid for, and creators get paid reliably.", "Why It Works"),

		textBlock("hiw-fcta-title", "HIW CTA: Headline", "Launch Your First<br />Knowledge Product", "HIW CTA"),
		textBlock("hiw-fcta-desc", "HIW CTA: Description", "From idea to pre-orders in days—guided, structured, and risk-free.", "HIW CTA"),
		textBlock("hiw-fcta-btn", "HIW CTA: Button Text", "Begin My Launch", "HIW CTA"),
	}
}

func helpDeskPageBlocks() []blocks.Block {
	return []blocks.Block{
		textBlock("hd-hero-title", "Hero: Headline", "How can we help?", "Hero Section"),
		textBlock("cat-gs-title", "Collection 1: Title", "Getting Started", "Collections"),
		textBlock("cat-gs-desc", "Collection 1: Description", "Learn the core concepts and launch your first campaign.", "Collections"),
		textBlock("cat-billing-title", "Collection 2: Title", "Billing & Payments", "Collections"),
		textBlock("cat-billing-desc", "Collection 2: Description", "Manage subscriptions, credit packs, and fund withdrawals.", "Collections"),
		textBlock("cat-safety-title", "Collection 3: Title", "Trust & Safety", "Collections"),
		textBlock("cat-safety-desc", "Collection 3: Description", "Understanding escrow, verification, and community guidelines.", "Collections"),
		textBlock("art-1-title", "Article 1: Title", "Setting up your first pre-sale campaign", "Promoted Articles"),
		textBlock("art-2-title", "Article 2: Title", "Understanding the 3-stage fund release", "Promoted Articles"),
		textBlock("art-3-title", "Article 3: Title", "How to verify delivery for your backers", "Promoted Articles"),
		textBlock("supp-card-title", "Contact: Title", "Still have questions?", "Support"),
		textBlock("supp-card-desc", "Contact: Description", "Our team is available 24/7 to help you navigate your creator journey.", "Support"),
	}
}

func (m *Module) seedHelpDesk(ctx context.Context) error {
	categories := []helpdesk.CreateCategoryRequest{
		{ID: "start", Label: "Start as a Creator", Description: "Everything you need to know about starting your journey on SprouX.", Icon: "Zap", Audience: helpdesk.AudienceCreator},
		{ID: "launch", Label: "Launch & Run Your Campaign", Description: "Strategies for structuring rewards and managing a live campaign.", Icon: "Rocket", Audience: helpdesk.AudienceCreator},
		{ID: "deliver", Label: "Deliver & Get Paid", Description: "The core mechanics of escrow, verification, and payouts.", Icon: "ShieldCheck", Audience: helpdesk.AudienceCreator},
		{ID: "trust", Label: "Trust & Disputes", Description: "How we handle conflicts and protect our community members.", Icon: "Scale", Audience: helpdesk.AudienceCreator},
		{ID: "account", Label: "Account & Access", Description: "Manage your profile, security, and notification preferences.", Icon: "User", Audience: helpdesk.AudienceCreator},
		{ID: "backer-basics", Label: "Backer Basics", Description: "Supporting projects and receiving your rewards safely.", Icon: "Heart", Audience: helpdesk.AudienceBacker},
		{ID: "backer-trust", Label: "Safety & Protection", Description: "How SprouX protects your funds and ensures delivery.", Icon: "Lock", Audience: helpdesk.AudienceBacker},
	}
	for _, req := range categories {
		if _, err := m.helpdesk.CreateCategory(ctx, req); err != nil {
			return err
		}
	}

	topics := []helpdesk.CreateTopicRequest{
		{ID: "basics", CategoryID: "start", Label: "Platform Basics", Description: "What is SprouX and how it works.", Icon: "Info"},
		{ID: "refinement", CategoryID: "start", Label: "Idea Refinement", Description: "Polishing your concept with feedback.", Icon: "PenTool"},
		{ID: "planning", CategoryID: "launch", Label: "Campaign Planning", Description: "Setting goals and timelines.", Icon: "Calendar"},
		{ID: "rewards", CategoryID: "launch", Label: "Rewards & Pricing", Description: "Early-bird tiers and reward structure.", Icon: "Tag"},
		{ID: "escrow", CategoryID: "deliver", Label: "Escrow System", Description: "Understanding the 30/60/10 split.", Icon: "Shield"},
		{ID: "payouts", CategoryID: "deliver", Label: "Payout Process", Description: "How and when you receive your funds.", Icon: "DollarSign"},
		{ID: "verification", CategoryID: "deliver", Label: "Verification", Description: "The 80% rule and proof of delivery.", Icon: "UserCheck"},
		{ID: "disputes", CategoryID: "trust", Label: "Dispute Handling", Description: "Mediation and resolution steps.", Icon: "Gavel"},
		{ID: "safety", CategoryID: "trust", Label: "Trust Philosophy", Description: "Why we use escrow to protect everyone.", Icon: "Activity"},
		{ID: "profile", CategoryID: "account", Label: "Profile Settings", Description: "Managing personal and payment info.", Icon: "Settings"},
		{ID: "pledging", CategoryID: "backer-basics", Label: "Pledging", Description: "Supporting creators financially.", Icon: "CreditCard"},
		{ID: "tracking", CategoryID: "backer-basics", Label: "Tracking Rewards", Description: "What happens after you pledge.", Icon: "Package"},
		{ID: "protection", CategoryID: "backer-trust", Label: "Buyer Protection", Description: "Escrow and dispute rights for backers.", Icon: "ShieldAlert"},
	}
	for _, req := range topics {
		if _, err := m.helpdesk.CreateTopic(ctx, req); err != nil {
			return err
		}
	}

	articles := []helpdesk.CreateArticleRequest{
		{
			Slug:        "what-is-sproux",
			Title:       "What is SprouX and who is it for?",
			Description: "An overview of the platform, its mission, and the types of creators best suited for our ecosystem.",
			Content:     "<h2>Welcome to SprouX</h2><p>SprouX is designed for creators who want to build products with community support. Unlike traditional crowdfunding, we focus on validation and trust through escrow.</p><p>We are the bridge for experts, educators, and makers who want to scale their business without the risk of building something nobody wants.</p>",
			ReadingTime: 3,
			TopicID:     "basics",
			Icon:        "Lightbulb",
			Status:      domain.StatusPublished,
		},
		{
			Slug:        "creator-journey-explained",
			Title:       "The creator journey explained",
			Description: "Understanding the four phases: Ideation, Validation, Funding, and Delivery.",
			Content:     "<h2>The 4 Phases</h2><p>Every project goes through these distinct stages: Ideation (Draft), Validation (Community interest), Funding (Live campaign), and Delivery (Fulfillment).</p>",
			ReadingTime: 5,
			TopicID:     "basics",
			Icon:        "Map",
			Status:      domain.StatusPublished,
		},
		{
			Slug:        "idea-refinement-works",
			Title:       "How idea refinement works",
			Description: "Using community feedback to polish your project concept before asking for funds.",
			Content:     "<h2>Refining your Idea</h2><p>Before launching, creators must go through a refinement phase where the community can ask questions and suggest improvements.</p>",
			ReadingTime: 4,
			TopicID:     "refinement",
			Icon:        "PenTool",
			Status:      domain.StatusPublished,
		},
		{
			Slug:        "funding-goals-calculated",
			Title:       "How funding goals are calculated",
			Description: "Setting realistic financial targets including fees, taxes, and manufacturing costs.",
			Content:     "<p>Calculate your goal by summing up production costs, platform fees (5%), and a buffer for unexpected taxes.</p>",
			ReadingTime: 4,
			TopicID:     "planning",
			Icon:        "Calculator",
			Status:      domain.StatusPublished,
		},
		{
			Slug:        "pricing-tiers-early-bird",
			Title:       "Pricing tiers & early-bird rules explained",
			Description: "Strategies for structuring your rewards to incentivize early backers.",
			Content:     "<p>Early bird tiers create urgency. We recommend limited quantities at a 15-20% discount from the standard price.</p>",
			ReadingTime: 5,
			TopicID:     "rewards",
			Icon:        "Tag",
			Status:      domain.StatusPublished,
		},
		{
			Slug:        "how-escrow-works-creator",
			Title:       "How escrow works (30/60/10) — creator view",
			Description: "Detailed breakdown of the tranche release system.",
			Content:     "<h2>The Tranche System</h2><p>Funds are held securely in a tiered release system to minimize risk for both parties.</p><ul><li>30% released upfront for materials.</li><li>60% released after delivery verification.</li><li>10% held for the guarantee period.</li></ul>",
			ReadingTime: 5,
			TopicID:     "escrow",
			Icon:        "Shield",
			Critical:    true,
			Status:      domain.StatusPublished,
		},
		{
			Slug:        "when-receive-first-30",
			Title:       "When do I receive the first 30%?",
			Description: "Timeline for the initial fund release following a successful campaign.",
			Content:     "<p>The first 30% is released when the campaign successfully ends and the cooling-off period passes.</p>",
			ReadingTime: 3,
			TopicID:     "payouts",
			Icon:        "Percent",
			Critical:    true,
			Status:      domain.StatusPublished,
		},
		{
			Slug:        "dispute-types-explained",
			Title:       "Types of disputes and when they happen",
			Description: "Categorizing common conflicts between creators and backers.",
			Content:     "<h2>Common Dispute Scenarios</h2><p>Disputes typically arise from three main areas: timeline delays without updates, substantial deviations from the validated concept, and complete non-delivery.</p><h3>Mediation Process</h3><p>SprouX acts as a neutral mediator to ensure the escrow system fairly evaluates proof of delivery vs. backer claims.</p>",
			ReadingTime: 4,
			TopicID:     "disputes",
			Icon:        "Gavel",
			Status:      domain.StatusPublished,
		},
		{
			Slug:        "why-escrow-exists",
			Title:       "Why escrow exists",
			Description: "The philosophy behind our trust-based system.",
			Content:     "<h2>The Trust Deficit</h2><p>Traditional crowdfunding relies on blind trust. SprouX replaces this with protocol-level accountability. Escrow ensures that creators have the working capital to build, while backers have the security of knowing funds are only fully released upon delivery.</p>",
			ReadingTime: 3,
			TopicID:     "safety",
			Icon:        "ShieldCheck",
			Status:      domain.StatusPublished,
		},
		{
			Slug:        "backer-verification-works",
			Title:       "How backer verification works (sampling & 80% rule)",
			Description: "Understanding the sampling process for delivery confirmation.",
			Content:     "<h2>The 80% Verification Rule</h2><p>The remaining 60% of funds is released once 80% of sampled backers confirm delivery.</p>",
			ReadingTime: 5,
			TopicID:     "verification",
			Icon:        "UserCheck",
			Critical:    true,
			Status:      domain.StatusPublished,
		},
		{
			Slug:        "how-pledging-works",
			Title:       "How pledging works",
			Description: "The process of supporting a campaign financially.",
			Content:     "<p>To pledge, simply select a reward tier and enter your payment details. You are only charged if the project hits its goal.</p>",
			ReadingTime: 3,
			TopicID:     "pledging",
			Icon:        "Heart",
			Status:      domain.StatusPublished,
		},
		{
			Slug:        "updating-account-information",
			Title:       "Updating account information",
			Description: "Changing your profile details and payment info.",
			Content:     "<h2>Managing Your Profile</h2><p>Keeping your account information up to date is essential for ensuring smooth payouts and secure communications. You can access your profile settings directly from your dashboard sidebar.</p><h3>Updating Personal Details</h3><p>You can change your display name, bio, and profile picture at any time. Changes to your bio will be reflected on your creator page immediately.</p><h3>Payment Information</h3><p>Ensure your connected bank account or payment processor is verified. Any changes to payment details will trigger a standard security verification process.</p>",
			ReadingTime: 2,
			TopicID:     "profile",
			Icon:        "Edit3",
			Status:      domain.StatusPublished,
		},
		{
			Slug:        "how-to-verify-delivery",
			Title:       "How to verify delivery",
			Description: "Confirming you received your item to release funds to the creator.",
			Content:     "<h2>Verifying Your Reward</h2><p>Once you receive your digital or physical product, you should verify delivery in your backer dashboard. This process ensures that creators are held accountable and that funds are released only when the community is satisfied.</p><h3>How to Confirm</h3><p>Navigate to your 'Backed Projects' section, find the specific campaign, and click the 'Confirm Receipt' button. A sample of backers is used to trigger the final 60% fund release based on the 80% verification rule.</p>",
			ReadingTime: 2,
			TopicID:     "tracking",
			Icon:        "CheckCircle",
			Status:      domain.StatusPublished,
		},
		{
			Slug:        "disputes-refunds-for-backers",
			Title:       "Disputes & refunds for backers",
			Description: "How to request a refund or open a dispute.",
			Content:     "<h2>Your Rights as a Backer</h2><p>SprouX is built on a foundation of trust and accountability. If a creator fails to deliver their promised reward or if the delivered product significantly deviates from the validated concept, you have the right to open a dispute or request a refund within the specified guarantee period.</p><h3>The Dispute Process</h3><p>To initiate a dispute, go to your dashboard, select the project, and click \"Open Dispute\". Our mediation team will review the evidence provided by both parties and the status of the escrowed funds to reach a fair resolution.</p>",
			ReadingTime: 5,
			TopicID:     "protection",
			Icon:        "RotateCcw",
			Status:      domain.StatusPublished,
		},
	}
	for _, req := range articles {
		if _, err := m.helpdesk.CreateArticle(ctx, req); err != nil {
			return err
		}
	}
	return nil
}

func (m *Module) seedBlog(ctx context.Context) error {
	categories := []posts.CreateCategoryRequest{
		{ID: "cat-1", Name: "Strategy", Slug: "strategy", Description: "Business strategy for creators."},
		{ID: "cat-2", Name: "AI Tools", Slug: "ai-tools", Description: "Leveraging AI for productivity."},
		{ID: "cat-3", Name: "Automation", Slug: "automation", Description: "Work smarter, not harder.", ParentID: "cat-2"},
	}
	for _, req := range categories {
		if _, err := m.posts.CreateCategory(ctx, req); err != nil {
			return err
		}
	}

	_, err := m.posts.Create(ctx, posts.CreatePostRequest{
		Title:       "The Future of Knowledge Autonomy",
		Slug:        "future-knowledge-autonomy",
		Excerpt:     "How AI is changing the landscape for independent creators.",
		Author:      "SprouX Admin",
		AuthorID:    "admin-01",
		Content:     "AI is not just a tool; it is a partner in the creative process...",
		Status:      posts.StatusPublished,
		CategoryIDs: []string{"cat-1", "cat-3"},
		Tags:        []string{"ai", "strategy"},
		CoverImage:  "https://picsum.photos/800/400?random=10",
		SEO: posts.SEO{
			Title:         "Knowledge Autonomy | SprouX Blog",
			Description:   "AI and Creators strategy article.",
			OGTitle:       "The Future of Knowledge Autonomy",
			OGDescription: "How AI is changing the landscape for independent creators.",
		},
	})
	return err
}

func (m *Module) seedMedia(ctx context.Context) error {
	_, err := m.media.Add(ctx, media.AddAttachmentRequest{
		ID:         "m1",
		FileName:   "hero-banner.jpg",
		FileType:   media.TypeImage,
		MimeType:   "image/jpeg",
		FileSize:   102400,
		URL:        "https://picsum.photos/seed/sproux/800/400",
		Title:      "Hero Banner",
		UploadedBy: "SprouX Admin",
	})
	return err
}
