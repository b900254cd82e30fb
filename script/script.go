package script

import (
	"fmt"
	"linklist/util"
	"strconv"
	"strings"
)

type Name string

const (
	InsertFirst Name = "insertFirst"
	Append      Name = "append"
	AppendAt    Name = "appendAt"
	Delete      Name = "delete"
	Traverse    Name = "traverse"
	TraverseRev Name = "traverseRev"
)

var arity = map[Name]int{
	InsertFirst: 1,
	Append:      1,
	AppendAt:    2,
	Delete:      1,
	Traverse:    0,
	TraverseRev: 0,
}

var namesByLowerCase = make(map[string]Name, len(arity))

func init() {
	for name := range arity {
		namesByLowerCase[strings.ToLower(string(name))] = name
	}
}

// Op is a single parsed script operation.
type Op struct {
	Name Name
	Args []int
	Line int
}

func (op Op) String() string {
	if len(op.Args) == 0 {
		return string(op.Name)
	}
	args := make([]string, len(op.Args))
	for i, arg := range op.Args {
		args[i] = strconv.Itoa(arg)
	}
	return fmt.Sprintf("%v %v", op.Name, strings.Join(args, " "))
}

func isComment(line string) bool {
	return strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//")
}

// Parse reads one operation per line; ';' also separates operations.
func Parse(text string) (*util.List[Op], error) {
	ops := &util.List[Op]{}
	text = strings.ReplaceAll(text, "\r\n", "\n")

	for i, line := range strings.Split(text, "\n") {
		lineNumber := i + 1
		cleanLine := strings.TrimSpace(line)
		if len(cleanLine) == 0 || isComment(cleanLine) {
			continue
		}
		for _, statement := range strings.Split(cleanLine, ";") {
			statement = strings.TrimSpace(statement)
			if len(statement) == 0 {
				continue
			}
			op, err := parseStatement(statement, lineNumber)
			if err != nil {
				return nil, &util.ErrorWithCode{
					StatusCode:    util.ERROR_BAD_SCRIPT,
					InternalError: fmt.Errorf("line %v: %w", lineNumber, err),
				}
			}
			ops.Insert(op)
		}
	}
	return ops, nil
}

func parseStatement(statement string, lineNumber int) (Op, error) {
	fields := strings.Fields(statement)
	name, found := namesByLowerCase[strings.ToLower(fields[0])]
	if !found {
		return Op{}, fmt.Errorf("unknown operation '%v'", fields[0])
	}
	if len(fields)-1 != arity[name] {
		return Op{}, fmt.Errorf("operation '%v' takes %v arguments, got %v", name, arity[name], len(fields)-1)
	}

	op := Op{
		Name: name,
		Args: make([]int, 0, arity[name]),
		Line: lineNumber,
	}
	for _, field := range fields[1:] {
		arg, err := strconv.Atoi(field)
		if err != nil {
			return Op{}, fmt.Errorf("operation '%v' argument '%v' is not an integer", name, field)
		}
		op.Args = append(op.Args, arg)
	}
	return op, nil
}
