package keywords

// synonymTable maps IELTS question vocabulary to words a passage may use instead
var synonymTable = map[string][]string{
	"majority":       {"bulk", "greater part", "largest part", "main portion", "most"},
	"energy":         {"electricity", "force", "fuel", "power", "strength", "vigor"},
	"generated":      {"created", "formed", "made", "manufactured", "produced", "yielded"},
	"electricity":    {"current", "electric power", "electrical energy", "power", "voltage"},
	"increase":       {"boost", "enhance", "expand", "grow", "improve", "rise"},
	"decrease":       {"decline", "diminish", "drop", "fall", "lower", "reduce"},
	"significant":    {"considerable", "important", "major", "meaningful", "notable", "substantial"},
	"research":       {"analysis", "examination", "exploration", "investigation", "study", "survey"},
	"development":    {"advancement", "evolution", "expansion", "growth", "improvement", "progress"},
	"environment":    {"conditions", "context", "ecosystem", "habitat", "nature", "surroundings"},
	"technology":     {"advancement", "equipment", "innovation", "machinery", "systems", "tools"},
	"education":      {"instruction", "knowledge", "learning", "schooling", "teaching", "training"},
	"economy":        {"commerce", "economics", "financial system", "industry", "market", "trade"},
	"health":         {"condition", "fitness", "healthcare", "medical", "well-being", "wellness"},
	"population":     {"citizens", "community", "demographics", "inhabitants", "people", "residents"},
	"climate":        {"atmosphere", "conditions", "environment", "seasons", "temperature", "weather"},
	"transport":      {"conveyance", "movement", "traffic", "transit", "transportation", "travel"},
	"industry":       {"business", "commerce", "manufacturing", "production", "sector", "trade"},
	"agriculture":    {"crop production", "cultivation", "farming", "harvesting", "land management"},
	"communication":  {"connection", "contact", "correspondence", "exchange", "interaction"},
	"information":    {"data", "details", "facts", "intelligence", "knowledge", "material"},
	"problem":        {"challenge", "concern", "difficulty", "issue", "matter", "obstacle"},
	"solution":       {"answer", "approach", "fix", "method", "remedy", "resolution"},
	"benefit":        {"advantage", "gain", "improvement", "merit", "profit", "value"},
	"disadvantage":   {"con", "drawback", "limitation", "negative aspect", "weakness"},
	"effect":         {"consequence", "impact", "influence", "outcome", "repercussion", "result"},
	"cause":          {"basis", "factor", "origin", "reason", "root", "source"},
	"process":        {"approach", "method", "operation", "procedure", "system", "technique"},
	"factor":         {"aspect", "component", "consideration", "element", "feature", "variable"},
	"level":          {"degree", "grade", "position", "rank", "standard", "status"},
	"rate":           {"frequency", "pace", "percentage", "proportion", "ratio", "speed"},
	"amount":         {"measure", "number", "quantity", "sum", "total", "volume"},
	"quality":        {"caliber", "characteristic", "condition", "feature", "grade", "standard"},
	"method":         {"approach", "procedure", "strategy", "system", "technique", "way"},
	"system":         {"arrangement", "framework", "network", "organization", "scheme", "structure"},
	"policy":         {"approach", "guideline", "procedure", "regulation", "rule", "strategy"},
	"change":         {"adjustment", "alteration", "modification", "shift", "transformation", "variation"},
	"improvement":    {"advancement", "development", "enhancement", "progress", "upgrade"},
	"reduction":      {"cut", "decline", "decrease", "diminishment", "drop", "lowering"},
	"analysis":       {"assessment", "evaluation", "examination", "investigation", "review", "study"},
	"comparison":     {"assessment", "contrast", "evaluation", "examination", "review"},
	"relationship":   {"association", "connection", "correlation", "interaction", "link"},
	"purpose":        {"aim", "function", "goal", "intention", "objective", "reason"},
	"function":       {"activity", "job", "operation", "purpose", "role", "task"},
	"feature":        {"aspect", "attribute", "characteristic", "element", "property", "quality"},
	"aspect":         {"characteristic", "dimension", "element", "facet", "feature", "quality"},
	"element":        {"aspect", "component", "factor", "feature", "ingredient", "part"},
	"component":      {"aspect", "element", "factor", "feature", "part", "section"},
	"resource":       {"asset", "material", "reserve", "source", "stock", "supply"},
	"material":       {"component", "element", "fabric", "matter", "stuff", "substance"},
	"product":        {"commodity", "creation", "good", "item", "output", "result"},
	"service":        {"amenity", "assistance", "facility", "offering", "provision", "supply"},
	"activity":       {"action", "function", "operation", "process", "task", "work"},
	"operation":      {"action", "activity", "function", "procedure", "process", "work"},
	"management":     {"administration", "control", "direction", "leadership", "supervision"},
	"organization":   {"administration", "arrangement", "management", "structure", "system"},
	"structure":      {"arrangement", "construction", "framework", "organization", "system"},
	"framework":      {"organization", "outline", "plan", "scheme", "structure", "system"},
	"strategy":       {"approach", "method", "plan", "policy", "scheme", "tactic"},
	"approach":       {"method", "procedure", "strategy", "system", "technique", "way"},
	"technique":      {"approach", "method", "procedure", "strategy", "system", "way"},
	"skill":          {"ability", "capability", "competence", "expertise", "proficiency", "talent"},
	"ability":        {"capability", "capacity", "competence", "power", "skill", "talent"},
	"knowledge":      {"awareness", "expertise", "information", "learning", "understanding"},
	"experience":     {"background", "exposure", "history", "knowledge", "practice", "skill"},
	"opportunity":    {"chance", "occasion", "opening", "option", "possibility", "prospect"},
	"challenge":      {"difficulty", "obstacle", "problem", "struggle", "test", "trial"},
	"success":        {"accomplishment", "achievement", "progress", "triumph", "victory", "win"},
	"failure":        {"defeat", "disappointment", "loss", "setback", "unsuccessful result"},
	"risk":           {"danger", "exposure", "hazard", "peril", "threat", "uncertainty"},
	"safety":         {"defense", "protection", "security", "shelter", "welfare", "well-being"},
	"security":       {"defense", "protection", "safeguards", "safety", "security measures"},
	"protection":     {"defense", "preservation", "safeguarding", "security", "shielding"},
	"preservation":   {"conservation", "maintenance", "protection", "saving", "upkeep"},
	"conservation":   {"maintenance", "preservation", "protection", "saving", "upkeep"},
	"maintenance":    {"care", "preservation", "repair", "service", "support", "upkeep"},
	"support":        {"aid", "assistance", "backing", "encouragement", "endorsement", "help"},
	"assistance":     {"aid", "backing", "cooperation", "help", "service", "support"},
	"cooperation":    {"collaboration", "coordination", "joint effort", "partnership", "teamwork"},
	"collaboration":  {"cooperation", "coordination", "joint effort", "partnership", "teamwork"},
	"partnership":    {"alliance", "association", "collaboration", "cooperation", "joint venture"},
	"teamwork":       {"collaboration", "cooperation", "coordination", "joint effort", "partnership"},
	"coordination":   {"collaboration", "cooperation", "harmony", "management", "organization"},
	"harmony":        {"agreement", "balance", "cooperation", "coordination", "peace", "unity"},
	"balance":        {"equality", "equilibrium", "harmony", "proportion", "stability", "symmetry"},
	"stability":      {"consistency", "firmness", "reliability", "security", "steadiness"},
	"consistency":    {"constancy", "regularity", "reliability", "steadiness", "uniformity"},
	"reliability":    {"consistency", "dependability", "stability", "steadiness", "trustworthiness"},
	"efficiency":     {"capability", "competence", "effectiveness", "performance", "productivity"},
	"effectiveness":  {"capability", "efficiency", "performance", "productivity", "success"},
	"productivity":   {"capability", "effectiveness", "efficiency", "output", "performance"},
	"performance":    {"achievement", "effectiveness", "efficiency", "productivity", "success"},
	"achievement":    {"accomplishment", "attainment", "performance", "result", "success"},
	"accomplishment": {"achievement", "attainment", "performance", "result", "success"},
	"attainment":     {"accomplishment", "achievement", "performance", "result", "success"},
	"result":         {"achievement", "consequence", "effect", "outcome", "performance", "success"},
	"outcome":        {"achievement", "consequence", "effect", "performance", "result", "success"},
	"consequence":    {"effect", "impact", "implication", "outcome", "repercussion", "result"},
	"impact":         {"consequence", "effect", "influence", "outcome", "repercussion", "result"},
	"influence":      {"consequence", "effect", "impact", "outcome", "repercussion", "result"},
	"repercussion":   {"consequence", "effect", "impact", "implication", "outcome", "result"},
	"implication":    {"consequence", "effect", "impact", "outcome", "repercussion", "result"},
}

// fillerWords never count as keywords
var fillerWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true, "be": true,
	"been": true, "being": true, "but": true, "by": true, "can": true, "could": true,
	"did": true, "do": true, "does": true, "for": true, "from": true, "had": true,
	"has": true, "have": true, "he": true, "her": true, "him": true, "i": true, "in": true,
	"is": true, "it": true, "may": true, "me": true, "might": true, "must": true,
	"of": true, "on": true, "or": true, "shall": true, "she": true, "should": true,
	"that": true, "the": true, "them": true, "these": true, "they": true, "this": true,
	"those": true, "to": true, "us": true, "was": true, "we": true, "were": true,
	"will": true, "with": true, "would": true, "you": true,
}
