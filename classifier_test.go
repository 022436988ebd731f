package twmerge

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	testcases := []struct {
		token    string
		expected string
	}{
		// typography
		{token: "font-sans", expected: "fontFamily"},
		{token: "font-mono", expected: "fontFamily"},
		{token: "font-['Inter']", expected: "fontFamily"},
		{token: "font-bold", expected: "fontWeight"},
		{token: "font-thin", expected: "fontWeight"},
		{token: "font-extrabold", expected: "fontWeight"},
		{token: "font-[550]", expected: "fontWeight"},
		{token: "italic", expected: "fontStyle"},
		{token: "text-xs", expected: "textSize"},
		{token: "text-base", expected: "textSize"},
		{token: "text-2xl", expected: "textSize"},
		{token: "text-[13px]", expected: "textSize"},
		{token: "text-red-500", expected: "textColor"},
		{token: "text-white", expected: "textColor"},
		{token: "text-slate-900/50", expected: "textColor"},
		{token: "text-[#1da1f2]", expected: "textColor"},
		{token: "text-[var(--brand)]", expected: "textColor"},
		{token: "text-center", expected: "textAlign"},
		{token: "underline", expected: "textDecoration"},
		{token: "uppercase", expected: "textTransform"},
		{token: "leading-tight", expected: "leading"},
		{token: "leading-6", expected: "leading"},
		{token: "tracking-wide", expected: "tracking"},
		{token: "whitespace-nowrap", expected: "whitespace"},
		{token: "break-words", expected: "wordBreak"},
		{token: "line-clamp-3", expected: "lineClamp"},
		{token: "line-through", expected: "textDecoration"},

		// background
		{token: "bg-blue-500", expected: "bgColor"},
		{token: "bg-transparent", expected: "bgColor"},
		{token: "bg-[#fafafa]", expected: "bgColor"},
		{token: "bg-opacity-50", expected: "bgOpacity"},

		// borders
		{token: "border", expected: "border"},
		{token: "border-2", expected: "border"},
		{token: "border-px", expected: "border"},
		{token: "border-[3px]", expected: "border"},
		{token: "border-t", expected: "borderT"},
		{token: "border-t-4", expected: "borderT"},
		{token: "border-x-2", expected: "borderX"},
		{token: "border-y", expected: "borderY"},
		{token: "border-gray-200", expected: "borderColor"},
		{token: "border-[#333]", expected: "borderColor"},
		{token: "border-dashed", expected: "borderStyle"},
		{token: "rounded", expected: "borderRadius"},
		{token: "rounded-sm", expected: "borderRadius"},
		{token: "rounded-[12px]", expected: "borderRadius"},
		{token: "rounded-t-lg", expected: "roundedT"},
		{token: "ring", expected: "ringWidth"},
		{token: "ring-2", expected: "ringWidth"},
		{token: "ring-blue-300", expected: "ringColor"},
		{token: "outline-none", expected: "outline"},

		// spacing
		{token: "p-4", expected: "p"},
		{token: "p-px", expected: "p"},
		{token: "p-0.5", expected: "p"},
		{token: "p-[3px]", expected: "p"},
		{token: "px-4", expected: "px"},
		{token: "py-2", expected: "py"},
		{token: "pl-1", expected: "pl"},
		{token: "m-2", expected: "m"},
		{token: "m-auto", expected: "m"},
		{token: "-m-2", expected: "m"},
		{token: "m--2", expected: "m"},
		{token: "mx-auto", expected: "mx"},
		{token: "-mt-px", expected: "mt"},
		{token: "ml-[10%]", expected: "ml"},
		{token: "gap-4", expected: "gap"},
		{token: "gap-x-2", expected: "gapX"},
		{token: "gap-y-px", expected: "gapY"},
		{token: "space-x-4", expected: "spaceX"},
		{token: "space-y-2", expected: "spaceY"},

		// layout
		{token: "flex", expected: "display"},
		{token: "grid", expected: "display"},
		{token: "hidden", expected: "display"},
		{token: "inline-flex", expected: "display"},
		{token: "flex-col", expected: "flexDirection"},
		{token: "flex-wrap", expected: "flexWrap"},
		{token: "flex-1", expected: "flex"},
		{token: "flex-none", expected: "flex"},
		{token: "grow", expected: "grow"},
		{token: "flex-grow-0", expected: "grow"},
		{token: "shrink-0", expected: "shrink"},
		{token: "basis-1/2", expected: "basis"},
		{token: "justify-between", expected: "justify"},
		{token: "items-center", expected: "items"},
		{token: "content-around", expected: "content"},
		{token: "self-end", expected: "self"},
		{token: "place-items-center", expected: "placeItems"},
		{token: "grid-cols-3", expected: "gridCols"},
		{token: "grid-rows-[auto_1fr]", expected: "gridRows"},
		{token: "col-span-2", expected: "colSpan"},
		{token: "order-first", expected: "order"},
		{token: "-order-1", expected: "order"},

		// sizing
		{token: "w-full", expected: "width"},
		{token: "w-1/2", expected: "width"},
		{token: "w-[200px]", expected: "width"},
		{token: "h-screen", expected: "height"},
		{token: "size-8", expected: "size"},
		{token: "min-w-0", expected: "minWidth"},
		{token: "min-h-screen", expected: "minHeight"},
		{token: "max-w-md", expected: "maxWidth"},
		{token: "max-w-7xl", expected: "maxWidth"},
		{token: "max-w-screen-lg", expected: "maxWidth"},
		{token: "max-h-96", expected: "maxHeight"},
		{token: "aspect-video", expected: "aspect"},
		{token: "object-cover", expected: "objectFit"},

		// effects
		{token: "shadow", expected: "shadow"},
		{token: "shadow-lg", expected: "shadow"},
		{token: "opacity-75", expected: "opacity"},

		// positioning
		{token: "absolute", expected: "position"},
		{token: "inset-0", expected: "inset"},
		{token: "inset-x-0", expected: "insetX"},
		{token: "-inset-y-2", expected: "insetY"},
		{token: "top-1/2", expected: "top"},
		{token: "-left-4", expected: "left"},
		{token: "right-auto", expected: "right"},
		{token: "bottom-[10px]", expected: "bottom"},
		{token: "z-10", expected: "zIndex"},
		{token: "-z-10", expected: "zIndex"},
		{token: "z-auto", expected: "zIndex"},

		// overflow & interactivity
		{token: "overflow-hidden", expected: "overflow"},
		{token: "overflow-x-auto", expected: "overflowX"},
		{token: "truncate", expected: "truncate"},
		{token: "text-ellipsis", expected: "truncate"},
		{token: "invisible", expected: "visibility"},
		{token: "cursor-not-allowed", expected: "cursor"},
		{token: "pointer-events-none", expected: "pointerEvents"},
		{token: "select-none", expected: "userSelect"},

		// transforms, transitions, filters
		{token: "scale-95", expected: "scale"},
		{token: "-scale-x-100", expected: "scaleX"},
		{token: "rotate-45", expected: "rotate"},
		{token: "-rotate-90", expected: "rotate"},
		{token: "translate-x-4", expected: "translateX"},
		{token: "-translate-y-1/2", expected: "translateY"},
		{token: "skew-x-3", expected: "skewX"},
		{token: "transform", expected: "transform"},
		{token: "transition", expected: "transition"},
		{token: "transition-colors", expected: "transition"},
		{token: "duration-300", expected: "duration"},
		{token: "ease-in-out", expected: "ease"},
		{token: "delay-150", expected: "delay"},
		{token: "animate-spin", expected: "animate"},
		{token: "blur", expected: "blur"},
		{token: "blur-md", expected: "blur"},
		{token: "brightness-110", expected: "brightness"},
		{token: "contrast-125", expected: "contrast"},
		{token: "grayscale", expected: "grayscale"},
		{token: "invert", expected: "invert"},
		{token: "sepia", expected: "sepia"},
		{token: "saturate-150", expected: "saturate"},
		{token: "-hue-rotate-60", expected: "hueRotate"},
	}
	for _, v := range testcases {
		require.Equalf(t, v.expected, Classify(v.token), "token %v", v.token)
	}
}

func TestClassifyVariants(t *testing.T) {
	for _, variant := range DefaultVariants {
		require.Equal(t, "textColor", Classify(variant+":text-red-500"), variant)
		require.Equal(t, "p", Classify(variant+":p-4"), variant)
	}
	// one variant segment only
	require.Equal(t, CustomPrefix+"md:hover:p-4", Classify("md:hover:p-4"))
	// unknown variants are part of the token
	require.Equal(t, CustomPrefix+"print:p-4", Classify("print:p-4"))
	// colons inside arbitrary values are not variants
	require.Equal(t, "textColor", Classify("text-[color:var(--x)]"))
}

func TestClassifyCustom(t *testing.T) {
	testcases := []string{"foo-bar", "btn", "text-", "p-", "p-four", "m-auto-4", "bg-[url(/a.png)]", "", "hover:"}
	for _, token := range testcases {
		require.Equalf(t, CustomPrefix+token, Classify(token), "token %q", token)
	}
	// distinct unknown tokens never share a group
	require.NotEqual(t, Classify("foo"), Classify("bar"))
}

func TestClassifyTotality(t *testing.T) {
	tokens := []string{"", " ", ":", "[", "]", "[]", "-", "--", "-p-", "p--", "font-", "sm:", "2xl:[x]", "text-[", "ü"}
	for _, token := range tokens {
		require.NotEmptyf(t, Classify(token), "token %q", token)
	}
}

// spatial and sizing groups accept numbers, px and arbitrary values alike
func TestValueShapes(t *testing.T) {
	leads := map[string]string{
		"p-": "p", "px-": "px", "py-": "py", "pt-": "pt", "pr-": "pr", "pb-": "pb", "pl-": "pl",
		"m-": "m", "mx-": "mx", "my-": "my", "mt-": "mt", "mr-": "mr", "mb-": "mb", "ml-": "ml",
		"gap-": "gap", "gap-x-": "gapX", "gap-y-": "gapY", "space-x-": "spaceX", "space-y-": "spaceY",
		"w-": "width", "h-": "height", "size-": "size", "min-w-": "minWidth", "min-h-": "minHeight",
		"max-w-": "maxWidth", "max-h-": "maxHeight", "basis-": "basis",
		"inset-": "inset", "inset-x-": "insetX", "inset-y-": "insetY",
		"top-": "top", "right-": "right", "bottom-": "bottom", "left-": "left",
		"translate-x-": "translateX", "translate-y-": "translateY",
	}
	for lead, id := range leads {
		for _, value := range []string{"0", "4", "2.5", "px", "[7px]"} {
			require.Equalf(t, id, Classify(lead+value), "token %v", lead+value)
		}
	}

	auto := map[string]string{"m-": "m", "mx-": "mx", "mt-": "mt", "inset-": "inset", "top-": "top", "left-": "left", "w-": "width", "h-": "height"}
	for lead, id := range auto {
		require.Equalf(t, id, Classify(lead+"auto"), "token %v", lead+"auto")
	}

	signed := map[string]string{
		"m-": "m", "mx-": "mx", "my-": "my", "mt-": "mt", "mr-": "mr", "mb-": "mb", "ml-": "ml",
		"inset-": "inset", "top-": "top", "right-": "right", "bottom-": "bottom", "left-": "left",
		"translate-x-": "translateX", "z-": "zIndex", "order-": "order", "rotate-": "rotate",
	}
	for lead, id := range signed {
		require.Equalf(t, id, Classify("-"+lead+"4"), "token %v", "-"+lead+"4")
		require.Equalf(t, id, Classify(lead+"-4"), "token %v", lead+"-4")
	}

	// negatives take the shapes of the positive value
	negative := map[string]string{
		"-translate-x-full": "translateX", "-translate-y-full": "translateY", "-translate-x-1/2": "translateX",
		"-inset-full": "inset", "-top-full": "top", "-left-1/2": "left", "-mx-px": "mx", "-z-[5]": "zIndex",
	}
	for token, id := range negative {
		require.Equalf(t, id, Classify(token), "token %v", token)
	}
	for _, token := range []string{"-m-auto", "-top-auto", "-order-first", "-z-auto"} {
		require.Equalf(t, CustomPrefix+token, Classify(token), "token %v", token)
	}

	// padding takes the dashed negative spelling only
	for _, lead := range []string{"p-", "px-", "py-", "pt-", "pr-", "pb-", "pl-"} {
		require.Equalf(t, leads[lead], Classify(lead+"-4"), "token %v", lead+"-4")
	}
	require.Equal(t, CustomPrefix+"-p-4", Classify("-p-4"))

	for _, token := range []string{"bg-[var(--brand)]", "bg-[#fff]", "bg-[rgb(0,0,0)]"} {
		require.Equalf(t, "bgColor", Classify(token), "token %v", token)
	}
}

func TestLookup(t *testing.T) {
	m, err := New(nil)
	require.Nil(t, err)

	got := m.Lookup("hover:bg-red-500")
	expected := Classification{Token: "hover:bg-red-500", Variant: "hover", Base: "bg-red-500", Group: "bgColor"}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("Lookup() mismatch (-want +got):\n%s", diff)
	}

	got = m.Lookup("btn-primary")
	expected = Classification{Token: "btn-primary", Base: "btn-primary", Group: "custom:btn-primary", Custom: true}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("Lookup() mismatch (-want +got):\n%s", diff)
	}
}

// the radix index must pick the same group as scanning the whole table
func TestClassifierMatchesLinearScan(t *testing.T) {
	linear := func(groups []Group, base string) string {
		for _, g := range groups {
			if g.Match(base) {
				return g.ID
			}
		}
		return CustomPrefix + base
	}
	groups := DefaultGroups()
	c := NewClassifier(groups)
	tokens := []string{
		"flex", "flex-row", "flex-1", "flex-grow", "font-bold", "font-sans", "text-sm", "text-red-500",
		"text-left", "text-ellipsis", "border", "border-t", "border-t-2", "border-red-500", "border-none",
		"rounded", "rounded-t", "ring", "ring-offset-2", "bg-opacity-25", "-m-4", "m--4", "inset-x-1",
		"-inset-x-1", "scale-x-50", "grid", "grid-cols-2", "hidden", "x", "",
	}
	for _, token := range tokens {
		require.Equalf(t, linear(groups, token), c.Classify(token), "token %q", token)
	}
}

func TestGroupsOrder(t *testing.T) {
	ids := NewClassifier(DefaultGroups()).Groups()
	require.Len(t, ids, len(defaultGroups))

	index := map[string]int{}
	for i, id := range ids {
		_, dup := index[id]
		require.Falsef(t, dup, "duplicate group id %v", id)
		index[id] = i
	}
	// family excludes weights, both must keep this order
	require.Less(t, index["fontFamily"], index["fontWeight"])
	require.Less(t, index["textSize"], index["textColor"])
	require.Less(t, index["borderX"], index["borderColor"])
	require.Less(t, index["display"], index["flex"])

	if diff := cmp.Diff([]string{"2xl", "active", "dark", "disabled", "focus", "hover", "lg", "md", "sm", "xl"}, NewClassifier(nil).Variants()); diff != "" {
		t.Errorf("Variants() mismatch (-want +got):\n%s", diff)
	}
}

func TestNoVariantsGroup(t *testing.T) {
	c := NewClassifier([]Group{{ID: "container", Recognizers: []Recognizer{Keywords("container")}, NoVariants: true}})
	require.Equal(t, "container", c.Classify("container"))
	require.Equal(t, CustomPrefix+"md:container", c.Classify("md:container"))
}
