package promptgen

// Static lookup tables mapping enumerated parameter values to narrative
// clauses and concrete technical targets. These are data, not logic: they are
// built once at package load and never mutated. Narrative clauses carry no
// trailing period; the paragraph builder adds separators.

type colorTempSpec struct {
	Kelvin    int
	Label     string
	Narrative string
}

type toneSpec struct {
	Hex       string
	Label     string
	Narrative string
}

type contrastSpec struct {
	Ratio     string
	Label     string
	Narrative string
}

type apertureSpec struct {
	FStop        string
	DepthOfField string
	Narrative    string
}

type focalSpec struct {
	MM        string
	Narrative string
}

var whiteBalanceDict = map[string]colorTempSpec{
	"warm_tungsten": {3200, "warm tungsten", "tungsten-warm color temperature soaks the frame in amber"},
	"warm_golden":   {4300, "golden warmth", "a golden cast sits over every surface, warm but not orange"},
	"neutral":       {5500, "neutral daylight", "color temperature is held at clean neutral daylight"},
	"cool_daylight": {6500, "cool daylight", "cool daylight pushes the palette toward blue without going clinical"},
	"cool_overcast": {7500, "cool overcast", "overcast-cool temperature flattens warmth out of the scene"},
	"cool_shade":    {8000, "deep shade", "deep-shade blue dominates, skin kept honest against it"},
}

var shadowToneDict = map[string]toneSpec{
	"cool_teal":    {"#3A5F6F", "cool teal shadows", "shadows lean cool teal rather than neutral black"},
	"warm_brown":   {"#4A382C", "warm brown shadows", "shadows fall into warm brown, never gray"},
	"neutral_gray": {"#3C3C40", "neutral shadows", "shadows stay neutral, no color cast in the darks"},
	"deep_black":   {"#101014", "crushed blacks", "blacks crush early and hold detail only where it matters"},
	"lifted_fog":   {"#5C6066", "lifted shadows", "shadows are lifted and milky, nothing reaches true black"},
}

var highlightToneDict = map[string]toneSpec{
	"warm_cream":    {"#F6EAD8", "warm cream highlights", "highlights roll off into warm cream"},
	"neutral_white": {"#F4F4F1", "neutral highlights", "highlights stay clean neutral white"},
	"cool_paper":    {"#EAF1F5", "cool paper highlights", "highlights carry a cool paper-white tint"},
	"soft_ivory":    {"#F1E8DC", "soft ivory highlights", "highlights soften into ivory before clipping"},
	"bright_clip":   {"#FBFBFB", "bright highlights", "highlights run bright and are allowed to clip at the very top"},
}

var contrastDict = map[string]contrastSpec{
	"low":     {"2:1", "low contrast", "contrast is kept low, tones compressed and gentle"},
	"medium":  {"4:1", "medium contrast", "contrast sits at a classic medium ratio"},
	"high":    {"8:1", "high contrast", "contrast runs high, shadows and highlights clearly separated"},
	"crushed": {"12:1", "crushed contrast", "contrast is pushed hard, graphic and unforgiving"},
}

var saturationDict = map[string]string{
	"muted":   "saturation is pulled down, colors muted toward gray",
	"natural": "saturation stays natural, as the eye would see it",
	"rich":    "colors are rich and dense without tipping into neon",
	"vivid":   "saturation runs vivid, color as a primary design element",
}

var colorShiftDict = map[string]string{
	"none":          "no grading shift, colors stay where the light put them",
	"teal_orange":   "a restrained teal-orange split sits under the grade",
	"faded_pastel":  "the grade fades everything toward washed pastel",
	"cross_process": "a cross-processed shift bends greens and magentas off-true",
	"mono_leaning":  "color is drained almost to monochrome, a single hue family surviving",
}

var shootingApproachDict = map[string]string{
	"editorial":   "shot like a magazine editorial, every frame deliberate",
	"documentary": "approached as documentary work, moments found rather than staged",
	"studio":      "a controlled studio discipline governs every setup",
	"street":      "street photography instincts, quick and reactive framing",
	"cinematic":   "composed like film stills, widescreen thinking in every frame",
}

var cameraClassDict = map[string]string{
	"film_35mm":      "rendered like 35mm film, organic grain and gentle halation",
	"film_120":       "rendered like medium-format film, creamy tonality and shallow falloff",
	"dslr_fullframe": "full-frame digital rendering, sharp but never clinical",
	"mirrorless":     "modern mirrorless rendering with honest, unsharpened detail",
	"compact_point":  "point-and-shoot character, slight softness and flash-adjacent charm",
}

var exposureDict = map[string]string{
	"bright_airy":       "exposure kept bright and airy, shadows open",
	"balanced":          "exposure balanced for the midtones",
	"moody_underexposed": "deliberately underexposed, mood carried in the darks",
	"high_key":          "high-key exposure, the frame almost entirely light tones",
	"low_key":           "low-key exposure, the subject carved out of darkness",
}

var shutterDict = map[string]string{
	"frozen":        "motion frozen completely, no blur anywhere",
	"natural":       "shutter at natural handheld speeds, honest micro-motion",
	"slight_motion": "a touch of motion blur where the body moves",
	"long_drag":     "dragged shutter, ambient motion smearing around a sharp subject",
}

var processingDict = map[string]string{
	"clean_minimal": "processing kept clean and minimal, no visible grade",
	"filmic":        "a filmic grade with soft curve shoulders",
	"heavy_grade":   "a heavy, opinionated grade that reads instantly",
	"archival_scan": "finished like an archival scan, dust-free but period-true",
}

var focalRangeDict = map[string]focalSpec{
	"wide":     {"24-35mm", "wide focal lengths pull the environment into the frame"},
	"standard": {"35-50mm", "standard focal lengths keep perspective human"},
	"portrait": {"85mm", "portrait-length compression flatters and isolates"},
	"tele":     {"105-135mm", "telephoto compression stacks the scene behind the subject"},
}

var apertureDict = map[string]apertureSpec{
	"wide_open": {"f/1.4-f/2.0", "razor-thin focus plane", "shot wide open, focus a razor-thin plane"},
	"shallow":   {"f/2.0-f/2.8", "shallow falloff", "shallow depth of field, background melting away"},
	"balanced":  {"f/4-f/5.6", "moderate depth", "a balanced aperture holds subject and context together"},
	"deep":      {"f/8-f/11", "front-to-back sharpness", "stopped down for front-to-back sharpness"},
}

var proximityDict = map[string]string{
	"intimate":      "the camera works intimately close, inside personal space",
	"close":         "close working distance, details readable",
	"conversational": "a conversational distance, the whole figure in easy reach",
	"observational": "an observational distance, the subject unaware of the lens",
}

var distortionDict = map[string]string{
	"none":          "no perspective distortion tolerated, verticals kept true",
	"natural_edges": "natural edge behaviour accepted, nothing corrected away",
	"embrace_wide":  "wide-angle distortion embraced as part of the language",
}

var emotionalVectorDict = map[string]string{
	"serene":      "the emotional register is serene and unhurried",
	"confident":   "quiet confidence carries every frame",
	"melancholic": "a melancholic undertow runs through the shoot",
	"fierce":      "the register is fierce, direct, editorial",
	"playful":     "a playful current keeps the frames light",
	"detached":    "cool detachment, the subject elsewhere in thought",
}

var energyDict = map[string]string{
	"still":   "energy held perfectly still",
	"calm":    "calm energy, slow deliberate movement",
	"charged": "charged energy just under the surface",
	"kinetic": "kinetic energy, the body always mid-motion",
}

var spontaneityDict = map[string]string{
	"composed": "every pose composed and held",
	"directed": "directed but loose, adjustments between frames",
	"candid":   "candid moments, poses caught rather than built",
	"chaotic":  "controlled chaos, the best frame found in the scramble",
}

var focusDict = map[string]string{
	"subject_locked":    "attention locked on the subject, environment secondary",
	"environment_aware": "the frame stays aware of the environment around the subject",
	"detail_hunting":    "the camera hunts details, texture and gesture over posture",
}

var productDisciplineDict = map[string]string{
	"relaxed": "garments sit naturally, styling relaxed",
	"present": "garments kept presentable, visible and readable in frame",
	"strict":  "strict product discipline, every garment shown clean and complete",
}

var lightSourceDict = map[string]string{
	"natural_window": "window light only",
	"direct_sun":     "direct sun",
	"overcast_sky":   "a full overcast sky as one giant softbox",
	"practical_lamps": "practical lamps in the scene doing the work",
	"studio_strobe":  "studio strobe shaped through modifiers",
	"mixed_ambient":  "mixed ambient sources, color temperature tension allowed",
}

var lightDirectionDict = map[string]string{
	"front":         "frontal light",
	"side":          "hard side light raking across the subject",
	"back":          "backlight wrapping the silhouette",
	"top":           "toplight dropping shadows into the eyes",
	"three_quarter": "classic three-quarter light",
}

var lightQualityDict = map[string]string{
	"hard":     "hard-edged shadows",
	"soft":     "soft wrapped light",
	"diffused": "heavily diffused, nearly shadowless light",
	"dappled":  "dappled light broken by foliage or architecture",
}

var timeOfDayDict = map[string]string{
	"dawn":        "dawn, the light thin and blue",
	"morning":     "mid-morning light, clean and directional",
	"midday":      "hard midday light, shadows short",
	"golden_hour": "golden hour, long warm shadows",
	"dusk":        "dusk, ambient light collapsing into practicals",
	"night":       "night, the scene lit by whatever is there",
}

var weatherDict = map[string]string{
	"clear":    "clear weather",
	"overcast": "overcast, no hard shadows anywhere",
	"rain":     "rain-wet surfaces doubling every light",
	"fog":      "fog compressing the scene into layers",
	"snow":     "snow bouncing light up into the shadows",
}

var eraDict = map[string]string{
	"contemporary": "firmly contemporary, nothing retro about the image-making",
	"y2k":          "early-2000s flash-and-gloss sensibility",
	"nineties":     "a nineties editorial feel, unpolished and direct",
	"eighties":     "an eighties register, saturated and posed",
	"seventies":    "a seventies warmth, film-native tones",
	"timeless":     "deliberately timeless, no decade markers allowed",
}

var decadeDict = map[string]string{
	"2020s": "grounded in 2020s visual culture",
	"2000s": "rooted in the 2000s",
	"1990s": "rooted in the 1990s",
	"1980s": "rooted in the 1980s",
	"1970s": "rooted in the 1970s",
}

var culturalContextDict = map[string]string{
	"parisian_chic":        "a Parisian chic context, effortless and exact",
	"tokyo_street":         "Tokyo street culture in the details",
	"scandi_minimal":       "Scandinavian minimalism in styling and space",
	"new_york_downtown":    "downtown New York attitude",
	"mediterranean_summer": "Mediterranean summer ease",
}

// antiAiLevelDict carries the base realism clause per level. Level "off" has
// no entry on purpose: the whole topic is suppressed.
var antiAiLevelDict = map[string]string{
	"minimal": "keep rendering honest, avoid the obvious synthetic tells",
	"low":     "favor believable imperfection over polish",
	"medium":  "real skin, real fabric, real light: imperfection is the point",
	"high":    "aggressively photographic: every surface must survive a print-size inspection for synthetic artifacts",
}

var antiAiFlagDict = map[string]string{
	"visible_pores":       "skin shows pores and fine texture",
	"flyaway_hairs":       "flyaway hairs stay in the frame",
	"natural_asymmetry":   "faces and poses keep their natural asymmetry",
	"fabric_wrinkles":     "fabric wrinkles and creases where bodies bend",
	"sensor_grain":        "grain or sensor noise is visible at full size",
	"imperfect_framing":   "framing is allowed to be a degree off-level",
	"ambient_reflections": "reflective surfaces pick up believable ambient detail",
}

// emotionPresetDict backs the preset path of the emotion block. A custom
// description always wins over these.
var emotionPresetDict = map[string]string{
	"calm_confidence":  "calm, grounded confidence; soft eyes, no smile",
	"quiet_melancholy": "quiet melancholy; gaze drifting past the lens",
	"fierce_editorial": "fierce editorial intensity; jaw set, eyes locked on camera",
	"warm_ease":        "warm ease; relaxed face, the beginning of an expression",
	"detached_cool":    "detached cool; unbothered, thinking about something else",
}

// skinAnchorFor derives the skin anchor from the white balance family. This is
// intentionally not a user-settable field: warm balances get a warm skin
// target, cool balances a cool one, everything else neutral.
func skinAnchorFor(whiteBalance string) (tone, rendering string) {
	switch {
	case whiteBalance == "warm_tungsten" || whiteBalance == "warm_golden":
		return "warm", "golden undertones, no orange clipping on skin"
	case whiteBalance == "cool_daylight" || whiteBalance == "cool_overcast" || whiteBalance == "cool_shade":
		return "cool", "neutral-cool undertones, skin kept honest against the blue"
	default:
		return "neutral", "neutral undertones, skin true to life"
	}
}
