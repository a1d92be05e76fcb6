package shell

// Shown at startup and by reset.
const intro = `┌──────────────────────────────────────────┐
│ RPN (Reverse Polish Notation) Calculator │
├──────────────────────────────────────────┤
│ type 'help' or 'advhelp' to show help    │
│ type 'commands' to list all commands     │
│ type 'reset' to clear screen             │
│ type 'exit' to stop program              │
└──────────────────────────────────────────┘
`

// Texts of the help commands.
const (
	help = `┌─────────────────────────────────────────────────────────┐
│ permitted operators/keywords: + - * / % ^ root fact ans │
│ permitted bitwise operators:  << >> and or xor not      │
├─────────────────────────────────────────────────────────┤
│ infix: 2 * 4  ->  postfix: 2 4 *   (multiplication)     │
│ infix: 2 ^ 8  ->  postfix: 2 8 ^   (exponentiation)     │
│ infix: 8 % 2  ->  postfix: 8 2 %   (remainder)          │
│ infix: 8 / 4  ->  postfix: 8 4 /   (division)           │
│ infix: 28!    ->  postfix: 28 fact (factorial)          │
└─────────────────────────────────────────────────────────┘
`
	advancedHelp = `┌─────────────────────────────────────────────────────────────────┐
│ permitted operators/keywords:  + - * / % ^ root fact ans        │
│ permitted bitwise operators:   << >> and or xor not             │
├─────────────────────────────────────────────────────────────────┤
│ ('ans' will use previous output/result)                         │
│ ('fact' will only use previous number/result as argument)       │
│ (missing operands reuse the first slot of the expression)       │
│ (define variable: x = 1 8 <<     where x is the variable name)  │
│ (access variable: $x 2 /         where x is the variable name)  │
│                                                                 │
│ infix: (a - b) * (c + ans)   ->  postfix: a b - c ans + *       │
│ infix: a ^ b / (c * PI) + 3  ->  postfix: a b ^ c PI * / e +    │
│ infix: 8√256 + (100 * 10)    ->  postfix: 8 256 root 100 10 * + │
│ infix: 24√(2 ^ (2 * 3 * 4))  ->  postfix: 24 2 2 3 * 4 * ^ root │
└─────────────────────────────────────────────────────────────────┘
`
	commandList = `┌──────────────────────────────────────────────────┐
│ help              shows help                     │
│ advhelp           shows advanced help            │
│ consts            shows available constants      │
│ vars              shows user defined variables   │
│ pop               pops (removes) last variable   │
│ remove <name>     removes specified variable     │
│ history           shows results of this session  │
│ clear             clears screen (hides intro)    │
│ reset             clears screen (shows intro)    │
│ exit              exits program                  │
│ verbose           shows extra information such   │
│                   as stack for current operation │
└──────────────────────────────────────────────────┘
`
	constantList = `┌────────────────┐
│ PI  ≈ 3.141592 │
│ TAU ≈ 6.283185 │
│ E   ≈ 2.718281 │
└────────────────┘
`
)
