package resolver

import "github.com/opendisruption/weeklinks/models"

// curatedPatterns is the merged curated table. The hand-tuned entries come
// first so they shadow the older, terser ones for overlapping URLs.
var curatedPatterns = []models.CuratedPattern{
	// OpenAI Atlas
	{Pattern: "chatgpt.com/atlas", Title: "OpenAI Atlas - AI Web Browser"},
	{Pattern: "openai.com/index/introducing-chatgpt-atlas", Title: "OpenAI: Introducing ChatGPT Atlas"},
	// Anthropic
	{Pattern: "anthropic.com/news/skills", Title: "Anthropic: Agent Skills Announcement"},
	{Pattern: "anthropic.com/engineering/equipping-agents", Title: "Anthropic: Equipping Agents for the Real World"},
	{Pattern: "anthropic.com/news/statement-dario-amodei", Title: "Anthropic: Dario Amodei on American AI Leadership"},
	{Pattern: "anthropic.com/research/economic-policy-responses", Title: "Anthropic: Economic Policy Responses Research"},
	// GitHub repositories with better descriptions
	{Pattern: "github.com/antgroup/ditto-talkinghead", Title: "GitHub: Ditto Talking Head (AI Video Generation)"},
	{Pattern: "github.com/Tencent-Hunyuan/HunyuanWorld-Mirror", Title: "GitHub: HunyuanWorld (Tencent AI World Model)"},
	// Research and statements
	{Pattern: "superintelligence-statement.org", Title: "Statement on Superintelligence"},
	{Pattern: "stateof.ai", Title: "State of AI 2025 Report"},
	// Google/DeepMind
	{Pattern: "deepmind.google/discover/blog/introducing-codemender", Title: "Google DeepMind: CodeMender AI Agent for Code Security"},
	{Pattern: "blog.google/technology/google-labs/video-overviews-nano-banana", Title: "Google Labs: Video Overviews Nano Banana"},
	{Pattern: "blog.google/technology/research/quantum-echoes", Title: "Google Research: Quantum Echoes Willow Advantage"},
	{Pattern: "cloud.google.com/blog/products/ai-machine-learning/announcing-the-2025-dora-report", Title: "Google Cloud: 2025 DORA Report Announcement"},
	{Pattern: "pair.withgoogle.com/guidebook", Title: "Google PAIR Guidebook"},
	{Pattern: "learnyourway.withgoogle.com", Title: "Google: Learn Your Way AI Learning Platform"},
	// Research & Academic
	{Pattern: "brookings.edu/articles/new-data-show-no-ai-jobs-apocalypse-for-now", Title: "Brookings: New Data Show No AI Jobs Apocalypse (For Now)"},
	{Pattern: "budgetlab.yale.edu/research/evaluating-impact-ai-labor-market", Title: "Yale Budget Lab: Evaluating Impact of AI on Labor Market"},
	{Pattern: "dallasfed.org/research/economics/2025/0624", Title: "Dallas Fed: AI and Economic Research"},
	{Pattern: "fortune.com/2025/10/10/ai-cheating-on-homework-chatbots-students-education", Title: "Fortune: AI Cheating on Homework - Students and Education"},
	// AI Tools & Platforms
	{Pattern: "metaphysic.ai/studios", Title: "Metaphysic Studios - AI VFX Innovation"},
	{Pattern: "artificialanalysis.ai/media/survey-2025", Title: "Artificial Analysis: 2025 Generative Media Survey"},
	{Pattern: "deepseek.ai/blog/deepseek-ocr", Title: "DeepSeek: OCR Context Compression"},
	{Pattern: "wavespeed.ai", Title: "WaveSpeed.ai - AI Tool"},
	{Pattern: "moondream.ai/blog/moondream-3-preview", Title: "Moondream 3 Preview"},
	{Pattern: "huggingface.co/moondream/moondream3-preview", Title: "Hugging Face: Moondream3 Preview Model"},
	{Pattern: "higgsfield.ai/sora-2-prompt-guide", Title: "Higgsfield.ai: Sora 2 Prompt Guide"},
	{Pattern: "huixiang.baidu.com", Title: "Baidu Huixiang AI Tool"},
	{Pattern: "runware.ai/models", Title: "Runware.ai: AI Models"},
	{Pattern: "streamlake.ai/product/kat-coder", Title: "StreamLake.ai: Kat Coder Product"},
	{Pattern: "scispace.com/ai-detector", Title: "SciSpace AI Detector"},
	{Pattern: "exa.ai/blog/exa-api-2-0", Title: "Exa.ai: API 2.0 Launch"},
	{Pattern: "video-zero-shot.github.io", Title: "Video Zero-Shot Research Project"},
	{Pattern: "kangliao929.github.io/projects/puffin", Title: "Puffin AI Project"},
	// News articles with better context
	{Pattern: "techcrunch.com/2025/10/21/netflix-goes-all-in", Title: "TechCrunch: Netflix Goes All-In on Generative AI"},
	{Pattern: "zdnet.com/article/adobe-mightve-just-solved", Title: "ZDNet: Adobe Solves Generative AI Legal Risks"},
	{Pattern: "creativebloq.com/ai/ai-art/could-this-iphone-nano-banana-camera", Title: "Creative Bloq: iPhone Nano Banana Camera for AI Photography"},
	// Layoff trackers
	{Pattern: "layoffs.fyi", Title: "Layoffs.fyi - Tech Layoff Tracker"},
	{Pattern: "trueup.io/layoffs", Title: "TrueUp.io - Layoff Tracking"},
	{Pattern: "warntracker.com", Title: "WarnTracker - Layoff Warnings"},
	{Pattern: "publish.obsidian.md/vg-layoffs/Archive/2025", Title: "Obsidian: Layoffs Archive 2025"},
	// Stable Diffusion
	{Pattern: "stable-diffusion-art.com/comfyui-desktop", Title: "Stable Diffusion Art - ComfyUI Desktop"},
}

// domainFallbacks labels major hosts when no curated pattern matches.
var domainFallbacks = []models.DomainLabel{
	{Domain: "anthropic.com", Label: "Anthropic"},
	{Domain: "openai.com", Label: "OpenAI"},
	{Domain: "deepmind.google", Label: "Google DeepMind"},
	{Domain: "cloud.google.com", Label: "Google Cloud"},
	{Domain: "pair.withgoogle.com", Label: "Google PAIR"},
	{Domain: "google.com", Label: "Google"},
	{Domain: "brookings.edu", Label: "Brookings"},
	{Domain: "fortune.com", Label: "Fortune"},
	{Domain: "yale.edu", Label: "Yale"},
	{Domain: "dallasfed.org", Label: "Dallas Fed"},
	{Domain: "layoffs.fyi", Label: "Layoffs.fyi"},
	{Domain: "trueup.io", Label: "TrueUp.io"},
	{Domain: "warntracker.com", Label: "WarnTracker"},
	{Domain: "wavespeed.ai", Label: "WaveSpeed.ai"},
	{Domain: "moondream.ai", Label: "Moondream"},
	{Domain: "higgsfield.ai", Label: "Higgsfield.ai"},
	{Domain: "runware.ai", Label: "Runware.ai"},
	{Domain: "streamlake.ai", Label: "StreamLake.ai"},
	{Domain: "scispace.com", Label: "SciSpace"},
	{Domain: "exa.ai", Label: "Exa.ai"},
	{Domain: "creativebloq.com", Label: "Creative Bloq"},
	{Domain: "stable-diffusion-art.com", Label: "Stable Diffusion Art"},
	{Domain: "publish.obsidian.md", Label: "Obsidian"},
}

// statusCategories labels known status-link accounts. Unknown accounts get
// the generic "AI Discussion" label.
var statusCategories = []struct {
	label     string
	usernames []string
}{
	{"AI Industry Insight", []string{"karpathy", "sundarpichai", "elonmusk", "raydalio"}},
	{"AI Research & Analysis", []string{"emollick", "cryps1s", "mhdfaran"}},
	{"AI Product Update", []string{"claudeai", "GoogleAIStudio", "brave"}},
	{"AI Tool Launch", []string{"krea_ai", "wavespeed_ai"}},
}

const genericStatusCategory = "AI Discussion"

func statusCategoryFor(username string) string {
	for _, c := range statusCategories {
		for _, u := range c.usernames {
			if u == username {
				return c.label
			}
		}
	}
	return genericStatusCategory
}
