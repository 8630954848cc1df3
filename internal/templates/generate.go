package templates

import (
	"fmt"
	"strings"

	"qwikshortcuts/internal/project"
)

const typedBody = `export interface [component]Props {
  class?: string;
}

export const [component] = component$<[component]Props>((props) => {
  return (
    <div class={props.class} data-component="[name]">
      <Slot />
    </div>
  );
});
`

const expressionBody = `export const [component] = component$(() => <div data-component="[name]"><Slot /></div>);
`

// Generate builds a component without reading a template file. js and jsx
// get a single-expression body; every other extension gets a props
// interface and a typed component.
func Generate(componentName, ext string, version project.Version) string {
	body := typedBody
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "jsx", "js":
		body = expressionBody
	}
	header := fmt.Sprintf("import { component$, Slot } from %q;\n\n", version.ImportPath())
	return header + substitute(tokenize(body), placeholderValues(componentName))
}
