package twmerge

// TableVersion identifies the revision of the built-in group table. Bump it
// whenever a group is added, removed or reordered.
const TableVersion = "v1.2.0"

// fontWeights are the keywords owned by fontWeight and excluded from fontFamily.
var fontWeights = []string{
	"thin", "extralight", "light", "normal", "medium", "semibold", "bold", "extrabold", "black",
}

var (
	spacing    = AnyOf(Number, Px, Arbitrary)
	padding    = AnyOf(spacing, SignedNumber) // p--4 as well
	margin     = AnyOf(Number, Px, Auto, Arbitrary)
	inset      = AnyOf(Number, Px, Auto, Fraction, OneOf("full"), Arbitrary)
	borderSize = AnyOf(Number, Px, ArbitraryLength)
	fontWeight = AnyOf(OneOf(fontWeights...), ArbitraryNumber)
	fontFamily = Except(Any, fontWeight)
	radius     = AnyOf(OneOf("none", "sm", "md", "lg", "xl", "2xl", "3xl", "full"), Arbitrary)
	translate  = AnyOf(Number, Px, Fraction, OneOf("full"), Arbitrary)
	numeric    = AnyOf(Number, Arbitrary)
	width      = AnyOf(Number, Px, Fraction, OneOf("auto", "full", "screen", "svw", "lvw", "dvw", "min", "max", "fit"), Arbitrary)
	height     = AnyOf(Number, Px, Fraction, OneOf("auto", "full", "screen", "svh", "lvh", "dvh", "min", "max", "fit"), Arbitrary)
	size       = AnyOf(Number, Px, Fraction, OneOf("auto", "full", "min", "max", "fit"), Arbitrary)
	minWidth   = AnyOf(Number, Px, OneOf("full", "min", "max", "fit"), Arbitrary)
	minHeight  = AnyOf(Number, Px, OneOf("full", "screen", "svh", "lvh", "dvh", "min", "max", "fit"), Arbitrary)
	maxWidth   = AnyOf(Number, Px, TShirt, OneOf("none", "full", "min", "max", "fit", "prose", "screen-sm", "screen-md", "screen-lg", "screen-xl", "screen-2xl"), Arbitrary)
	maxHeight  = AnyOf(Number, Px, OneOf("none", "full", "screen", "svh", "lvh", "dvh", "min", "max", "fit"), Arbitrary)
	gridTracks = AnyOf(Number, OneOf("none", "subgrid"), Arbitrary)
	span       = AnyOf(Number, OneOf("full"), Arbitrary)
)

// defaultGroups is the built-in table in declaration order. Classification
// returns the first group that accepts a token, so entries that are prefixes
// or near-subsets of later ones must stay above them.
var defaultGroups = []Group{
	// Typography
	group("fontFamily", Prefixed("font-", fontFamily)),
	group("fontWeight", Prefixed("font-", fontWeight)),
	group("fontStyle", Keywords("italic", "not-italic")),
	group("textSize", Prefixed("text-", AnyOf(TShirt, ArbitraryLength))),
	group("textColor", Prefixed("text-", AnyOf(Color, Except(Arbitrary, ArbitraryLength)))),
	group("textAlign", Prefixed("text-", OneOf("left", "right", "center", "justify", "start", "end"))),
	group("textDecoration", Keywords("underline", "overline", "line-through", "no-underline")),
	group("textTransform", Keywords("uppercase", "lowercase", "capitalize", "normal-case")),
	group("leading", Prefixed("leading-", AnyOf(OneOf("none", "tight", "snug", "normal", "relaxed", "loose"), Number, Arbitrary))),
	group("tracking", Prefixed("tracking-", AnyOf(OneOf("tighter", "tight", "normal", "wide", "wider", "widest"), Arbitrary))),
	group("whitespace", Prefixed("whitespace-", OneOf("normal", "nowrap", "pre", "pre-line", "pre-wrap", "break-spaces"))),
	group("wordBreak", Prefixed("break-", OneOf("normal", "words", "all", "keep"))),
	group("lineClamp", Prefixed("line-clamp-", AnyOf(Number, OneOf("none"), Arbitrary))),

	// Background
	group("bgColor", Prefixed("bg-", AnyOf(Color, ArbitraryColor))),
	group("bgOpacity", Prefixed("bg-opacity-", AnyOf(Number, Arbitrary))),

	// Borders
	group("border", Keywords("border"), Prefixed("border-", borderSize)),
	group("borderT", Keywords("border-t"), Prefixed("border-t-", borderSize)),
	group("borderR", Keywords("border-r"), Prefixed("border-r-", borderSize)),
	group("borderB", Keywords("border-b"), Prefixed("border-b-", borderSize)),
	group("borderL", Keywords("border-l"), Prefixed("border-l-", borderSize)),
	group("borderX", Keywords("border-x"), Prefixed("border-x-", borderSize)),
	group("borderY", Keywords("border-y"), Prefixed("border-y-", borderSize)),
	group("borderColor", Prefixed("border-", AnyOf(Color, Arbitrary))),
	group("borderStyle", Prefixed("border-", OneOf("solid", "dashed", "dotted", "double", "hidden", "none"))),
	group("borderRadius", Keywords("rounded"), Prefixed("rounded-", radius)),
	group("roundedT", Keywords("rounded-t"), Prefixed("rounded-t-", radius)),
	group("roundedR", Keywords("rounded-r"), Prefixed("rounded-r-", radius)),
	group("roundedB", Keywords("rounded-b"), Prefixed("rounded-b-", radius)),
	group("roundedL", Keywords("rounded-l"), Prefixed("rounded-l-", radius)),
	group("ringWidth", Keywords("ring"), Prefixed("ring-", borderSize)),
	group("ringColor", Prefixed("ring-", AnyOf(Color, Arbitrary))),
	group("outline", Keywords("outline", "outline-none", "outline-dashed", "outline-dotted", "outline-double")),

	// Spacing (Padding)
	group("p", Prefixed("p-", padding)),
	group("px", Prefixed("px-", padding)),
	group("py", Prefixed("py-", padding)),
	group("pt", Prefixed("pt-", padding)),
	group("pr", Prefixed("pr-", padding)),
	group("pb", Prefixed("pb-", padding)),
	group("pl", Prefixed("pl-", padding)),

	// Spacing (Margin)
	group("m", Signed("m-", margin)),
	group("mx", Signed("mx-", margin)),
	group("my", Signed("my-", margin)),
	group("mt", Signed("mt-", margin)),
	group("mr", Signed("mr-", margin)),
	group("mb", Signed("mb-", margin)),
	group("ml", Signed("ml-", margin)),

	// Gap & Space
	group("gap", Prefixed("gap-", spacing)),
	group("gapX", Prefixed("gap-x-", spacing)),
	group("gapY", Prefixed("gap-y-", spacing)),
	group("spaceX", Signed("space-x-", spacing)),
	group("spaceY", Signed("space-y-", spacing)),

	// Layout & Flex/Grid
	group("display", Keywords("block", "inline-block", "inline", "flex", "inline-flex", "grid", "inline-grid",
		"table", "contents", "flow-root", "list-item", "hidden")),
	group("flexDirection", Keywords("flex-row", "flex-row-reverse", "flex-col", "flex-col-reverse")),
	group("flexWrap", Keywords("flex-wrap", "flex-wrap-reverse", "flex-nowrap")),
	group("flex", Prefixed("flex-", AnyOf(OneOf("1", "auto", "initial", "none"), Arbitrary))),
	group("grow", Keywords("grow", "flex-grow"), Prefixed("grow-", numeric), Prefixed("flex-grow-", numeric)),
	group("shrink", Keywords("shrink", "flex-shrink"), Prefixed("shrink-", numeric), Prefixed("flex-shrink-", numeric)),
	group("basis", Prefixed("basis-", AnyOf(Number, Px, Fraction, OneOf("auto", "full"), Arbitrary))),
	group("justify", Prefixed("justify-", OneOf("start", "end", "center", "between", "around", "evenly", "normal", "stretch"))),
	group("items", Prefixed("items-", OneOf("start", "end", "center", "stretch", "baseline"))),
	group("content", Prefixed("content-", OneOf("start", "end", "center", "between", "around", "evenly", "stretch", "normal"))),
	group("self", Prefixed("self-", OneOf("auto", "start", "end", "center", "stretch", "baseline"))),
	group("placeContent", Prefixed("place-content-", OneOf("start", "end", "center", "between", "around", "evenly", "stretch"))),
	group("placeItems", Prefixed("place-items-", OneOf("start", "end", "center", "stretch", "baseline"))),
	group("gridCols", Prefixed("grid-cols-", gridTracks)),
	group("gridRows", Prefixed("grid-rows-", gridTracks)),
	group("colSpan", Prefixed("col-span-", span)),
	group("rowSpan", Prefixed("row-span-", span)),
	group("order", Signed("order-", AnyOf(Number, OneOf("first", "last", "none"), Arbitrary))),

	// Sizing
	group("width", Prefixed("w-", width)),
	group("height", Prefixed("h-", height)),
	group("size", Prefixed("size-", size)),
	group("minWidth", Prefixed("min-w-", minWidth)),
	group("minHeight", Prefixed("min-h-", minHeight)),
	group("maxWidth", Prefixed("max-w-", maxWidth)),
	group("maxHeight", Prefixed("max-h-", maxHeight)),
	group("aspect", Prefixed("aspect-", AnyOf(OneOf("auto", "square", "video"), Fraction, Arbitrary))),
	group("objectFit", Prefixed("object-", OneOf("contain", "cover", "fill", "none", "scale-down"))),

	// Effects
	group("shadow", Keywords("shadow"), Prefixed("shadow-", AnyOf(OneOf("sm", "md", "lg", "xl", "2xl", "inner", "none"), Arbitrary))),
	group("opacity", Prefixed("opacity-", numeric)),

	// Positioning
	group("position", Keywords("static", "fixed", "absolute", "relative", "sticky")),
	group("inset", Signed("inset-", inset)),
	group("insetX", Signed("inset-x-", inset)),
	group("insetY", Signed("inset-y-", inset)),
	group("top", Signed("top-", inset)),
	group("right", Signed("right-", inset)),
	group("bottom", Signed("bottom-", inset)),
	group("left", Signed("left-", inset)),
	group("zIndex", Signed("z-", AnyOf(Number, Auto, Arbitrary))),

	// Overflow
	group("overflow", Prefixed("overflow-", OneOf("auto", "hidden", "clip", "visible", "scroll"))),
	group("overflowX", Prefixed("overflow-x-", OneOf("auto", "hidden", "clip", "visible", "scroll"))),
	group("overflowY", Prefixed("overflow-y-", OneOf("auto", "hidden", "clip", "visible", "scroll"))),
	group("truncate", Keywords("truncate", "text-ellipsis", "text-clip")),

	// Interactivity
	group("visibility", Keywords("visible", "invisible", "collapse")),
	group("cursor", Prefixed("cursor-", AnyOf(Word, Arbitrary))),
	group("pointerEvents", Keywords("pointer-events-none", "pointer-events-auto")),
	group("userSelect", Prefixed("select-", OneOf("none", "text", "all", "auto"))),

	// Transforms
	group("scale", Signed("scale-", numeric)),
	group("scaleX", Signed("scale-x-", numeric)),
	group("scaleY", Signed("scale-y-", numeric)),
	group("rotate", Signed("rotate-", numeric)),
	group("translateX", Signed("translate-x-", translate)),
	group("translateY", Signed("translate-y-", translate)),
	group("skewX", Signed("skew-x-", numeric)),
	group("skewY", Signed("skew-y-", numeric)),
	group("transform", Keywords("transform", "transform-gpu", "transform-cpu", "transform-none")),

	// Transitions
	group("transition", Keywords("transition"), Prefixed("transition-", OneOf("none", "all", "colors", "opacity", "shadow", "transform"))),
	group("duration", Prefixed("duration-", numeric)),
	group("ease", Prefixed("ease-", AnyOf(OneOf("linear", "in", "out", "in-out"), Arbitrary))),
	group("delay", Prefixed("delay-", numeric)),

	// Animations
	group("animate", Prefixed("animate-", AnyOf(OneOf("spin", "ping", "pulse", "bounce", "none"), Arbitrary))),

	// Filters
	group("blur", Keywords("blur"), Prefixed("blur-", AnyOf(OneOf("none", "sm", "md", "lg", "xl", "2xl", "3xl"), Arbitrary))),
	group("brightness", Prefixed("brightness-", numeric)),
	group("contrast", Prefixed("contrast-", numeric)),
	group("grayscale", Keywords("grayscale", "grayscale-0")),
	group("invert", Keywords("invert", "invert-0")),
	group("sepia", Keywords("sepia", "sepia-0")),
	group("saturate", Prefixed("saturate-", numeric)),
	group("hueRotate", Signed("hue-rotate-", numeric)),
}

// DefaultGroups returns a copy of the built-in group table in declaration order.
func DefaultGroups() []Group {
	groups := make([]Group, len(defaultGroups))
	copy(groups, defaultGroups)
	return groups
}
